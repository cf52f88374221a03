// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the multimedia API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - AssetHandler: binary assets, one instance per kind (sprites, audio)
  - ScoreHandler: player scores

	spriteHandler := handlers.NewAssetHandler(store, cfg, models.SpriteKind)
	scoreHandler := handlers.NewScoreHandler(store, cfg)

# Assets

Uploads are multipart with a single "file" field, capped at
Config.MaxUploadBytes:

	POST   /upload_sprite  → Upload
	GET    /sprites        → List (content as hex)
	GET    /sprite/{id}    → Get
	PUT    /sprite/{id}    → Update (replaces filename and content)
	DELETE /sprite/{id}    → Delete

Audio uses /upload_audio, /audios and /audio/{id}.

# Scores

	POST   /upload_player_score → Create
	GET    /player_scores       → List
	GET    /player_score/{id}   → Get
	PUT    /player_score/{id}   → Update
	DELETE /player_score/{id}   → Delete

# Errors

Validation failures are 400 with the rule's message, malformed ids are 400,
unknown ids are 404, and store failures are 500 "Database error".
*/
package handlers
