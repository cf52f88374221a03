// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/multimedia-db/cliparse"
	"github.com/danielhkuo/multimedia-db/db"
	"github.com/danielhkuo/multimedia-db/handlers"
	"github.com/danielhkuo/multimedia-db/middleware"
	"github.com/danielhkuo/multimedia-db/models"
)

func NewRouter(store db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	spriteHandler := handlers.NewAssetHandler(store, cfg, models.SpriteKind)
	audioHandler := handlers.NewAssetHandler(store, cfg, models.AudioKind)
	scoreHandler := handlers.NewScoreHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sprites
	mux.HandleFunc("POST /upload_sprite", middleware.WithLogging(spriteHandler.Upload))
	mux.HandleFunc("GET /sprites", middleware.WithLogging(spriteHandler.List))
	mux.HandleFunc("GET /sprite/{id}", middleware.WithLogging(spriteHandler.Get))
	mux.HandleFunc("PUT /sprite/{id}", middleware.WithLogging(spriteHandler.Update))
	mux.HandleFunc("DELETE /sprite/{id}", middleware.WithLogging(spriteHandler.Delete))

	// Audio
	mux.HandleFunc("POST /upload_audio", middleware.WithLogging(audioHandler.Upload))
	mux.HandleFunc("GET /audios", middleware.WithLogging(audioHandler.List))
	mux.HandleFunc("GET /audio/{id}", middleware.WithLogging(audioHandler.Get))
	mux.HandleFunc("PUT /audio/{id}", middleware.WithLogging(audioHandler.Update))
	mux.HandleFunc("DELETE /audio/{id}", middleware.WithLogging(audioHandler.Delete))

	// Player scores
	mux.HandleFunc("POST /upload_player_score", middleware.WithLogging(scoreHandler.Create))
	mux.HandleFunc("GET /player_scores", middleware.WithLogging(scoreHandler.List))
	mux.HandleFunc("GET /player_score/{id}", middleware.WithLogging(scoreHandler.Get))
	mux.HandleFunc("PUT /player_score/{id}", middleware.WithLogging(scoreHandler.Update))
	mux.HandleFunc("DELETE /player_score/{id}", middleware.WithLogging(scoreHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("multimedia-db API v1"))
	})

	return mux
}
