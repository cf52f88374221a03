// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines document shapes, request and response types.

# Collections

	CollectionSprites = "sprites"  // images: filename + content
	CollectionAudio   = "audio"    // sounds: filename + content
	CollectionScores  = "scores"   // player_name + score

Collections holds them in the order they are created.

# Asset Kinds

SpriteKind and AudioKind carry per-collection rules and wording:

  - sprites accept .png, .jpg, .jpeg
  - audio accepts .mp3, .wav, .ogg

# Conversions

Asset and Score convert to and from store documents:

	doc := score.Document()
	s, err := models.ScoreFromDocument(stored)

Asset content goes out as hex in AssetResponse.

# Validation

PlayerScoreRequest.Validate rejects empty names and negative scores and
strips player names down to [a-zA-Z0-9 ].
*/
package models
