package models

import (
	"encoding/hex"
	"fmt"
)

// Collection names
const (
	CollectionSprites = "sprites"
	CollectionAudio   = "audio"
	CollectionScores  = "scores"
)

// Collections lists every collection in creation order.
var Collections = []string{CollectionSprites, CollectionAudio, CollectionScores}

// Document field names
const (
	FieldID         = "_id"
	FieldFilename   = "filename"
	FieldContent    = "content"
	FieldPlayerName = "player_name"
	FieldScore      = "score"
)

// Asset kinds

// AssetKind describes one binary-asset collection and how the API talks about it.
type AssetKind struct {
	Collection      string
	Label           string // used in "<Label> not found"
	Extensions      []string
	UploadedMessage string
	UpdatedMessage  string
	DeletedMessage  string
}

var SpriteKind = AssetKind{
	Collection:      CollectionSprites,
	Label:           "Sprite",
	Extensions:      []string{".png", ".jpg", ".jpeg"},
	UploadedMessage: "Sprite uploaded",
	UpdatedMessage:  "Sprite updated",
	DeletedMessage:  "Sprite deleted",
}

var AudioKind = AssetKind{
	Collection:      CollectionAudio,
	Label:           "Audio file",
	Extensions:      []string{".mp3", ".wav", ".ogg"},
	UploadedMessage: "Audio file uploaded",
	UpdatedMessage:  "Audio updated",
	DeletedMessage:  "Audio deleted",
}

// Request types

type PlayerScoreRequest struct {
	PlayerName string `json:"player_name"`
	Score      *int   `json:"score"`
}

// Response types

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AssetResponse carries content hex-encoded so it survives JSON.
type AssetResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Domain types

type Asset struct {
	ID       string
	Filename string
	Content  []byte
}

type Score struct {
	ID         string `json:"id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
}

// Document returns the stored shape of the asset (without id).
func (a Asset) Document() map[string]any {
	return map[string]any{
		FieldFilename: a.Filename,
		FieldContent:  a.Content,
	}
}

// Response returns the JSON shape of the asset.
func (a Asset) Response() AssetResponse {
	return AssetResponse{
		ID:       a.ID,
		Filename: a.Filename,
		Content:  hex.EncodeToString(a.Content),
	}
}

// Document returns the stored shape of the score (without id).
func (s Score) Document() map[string]any {
	return map[string]any{
		FieldPlayerName: s.PlayerName,
		FieldScore:      s.Score,
	}
}

// AssetFromDocument reads an asset out of a stored document.
func AssetFromDocument(doc map[string]any) (Asset, error) {
	var a Asset
	var ok bool

	if a.ID, ok = doc[FieldID].(string); !ok {
		return Asset{}, fmt.Errorf("asset document missing %s", FieldID)
	}
	if a.Filename, ok = doc[FieldFilename].(string); !ok {
		return Asset{}, fmt.Errorf("asset %s: %s is not a string", a.ID, FieldFilename)
	}
	if a.Content, ok = doc[FieldContent].([]byte); !ok {
		return Asset{}, fmt.Errorf("asset %s: %s is not binary", a.ID, FieldContent)
	}
	return a, nil
}

// ScoreFromDocument reads a score out of a stored document.
func ScoreFromDocument(doc map[string]any) (Score, error) {
	var s Score
	var ok bool

	if s.ID, ok = doc[FieldID].(string); !ok {
		return Score{}, fmt.Errorf("score document missing %s", FieldID)
	}
	if s.PlayerName, ok = doc[FieldPlayerName].(string); !ok {
		return Score{}, fmt.Errorf("score %s: %s is not a string", s.ID, FieldPlayerName)
	}
	if s.Score, ok = asInt(doc[FieldScore]); !ok {
		return Score{}, fmt.Errorf("score %s: %s is not an integer", s.ID, FieldScore)
	}
	return s, nil
}

// asInt accepts the integer widths the BSON decoders hand back.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
