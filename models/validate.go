// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"regexp"
	"strings"
)

// ValidationError is a client mistake. Message is sent back as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrEmptyFile          = &ValidationError{"Empty file"}
	ErrInvalidFileType    = &ValidationError{"Invalid file type"}
	ErrPlayerNameRequired = &ValidationError{"Player name is required"}
	ErrScoreRequired      = &ValidationError{"Score must be an integer"}
	ErrNegativeScore      = &ValidationError{"Score must be non-negative"}
)

// ValidateUpload checks an uploaded file against the kind's rules.
func (k AssetKind) ValidateUpload(filename string, content []byte) error {
	if len(content) == 0 {
		return ErrEmptyFile
	}
	if !k.AllowsFilename(filename) {
		return ErrInvalidFileType
	}
	return nil
}

// AllowsFilename reports whether filename ends in one of the kind's extensions.
// The match is case-sensitive.
func (k AssetKind) AllowsFilename(filename string) bool {
	for _, ext := range k.Extensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

var playerNameStrip = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// CleanPlayerName drops everything but ASCII letters, digits and spaces.
func CleanPlayerName(name string) string {
	return playerNameStrip.ReplaceAllString(name, "")
}

// Validate checks the request and returns the Score to store, with the
// player name cleaned.
func (r PlayerScoreRequest) Validate() (Score, error) {
	if r.PlayerName == "" {
		return Score{}, ErrPlayerNameRequired
	}
	if r.Score == nil {
		return Score{}, ErrScoreRequired
	}
	if *r.Score < 0 {
		return Score{}, ErrNegativeScore
	}
	return Score{
		PlayerName: CleanPlayerName(r.PlayerName),
		Score:      *r.Score,
	}, nil
}
