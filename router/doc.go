// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the multimedia API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Sprites:

	POST   /upload_sprite - Upload (multipart "file")
	GET    /sprites       - List
	GET    /sprite/{id}   - Fetch one
	PUT    /sprite/{id}   - Replace
	DELETE /sprite/{id}   - Delete

Audio:

	POST   /upload_audio
	GET    /audios
	GET    /audio/{id}
	PUT    /audio/{id}
	DELETE /audio/{id}

Player scores:

	POST   /upload_player_score
	GET    /player_scores
	GET    /player_score/{id}
	PUT    /player_score/{id}
	DELETE /player_score/{id}

Every API route is wrapped in middleware.WithLogging.
*/
package router
