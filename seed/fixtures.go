// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"embed"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/danielhkuo/multimedia-db/models"
)

//go:embed fixtures/*.b64
var fixtureFS embed.FS

// assetFixture is a binary asset kept base64-encoded on disk.
type assetFixture struct {
	kind     models.AssetKind
	filename string
	file     string
}

var (
	scoreFixture = models.Score{PlayerName: "Rick", Score: 2000}

	audioFixture = assetFixture{
		kind:     models.AudioKind,
		filename: "wifikun.ogg",
		file:     "fixtures/wifikun.ogg.b64",
	}

	spriteFixture = assetFixture{
		kind:     models.SpriteKind,
		filename: "rick astley.jpeg",
		file:     "fixtures/rick_astley.jpeg.b64",
	}
)

// decodeFixture reads an embedded base64 file and returns the raw bytes.
func decodeFixture(file string) ([]byte, error) {
	encoded, err := fixtureFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", file, err)
	}
	content, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", file, err)
	}
	return content, nil
}

func (f assetFixture) asset() (models.Asset, error) {
	content, err := decodeFixture(f.file)
	if err != nil {
		return models.Asset{}, err
	}
	return models.Asset{Filename: f.filename, Content: content}, nil
}
