// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/multimedia-db/cliparse"
	"github.com/danielhkuo/multimedia-db/db"
	"github.com/danielhkuo/multimedia-db/middleware"
	"github.com/danielhkuo/multimedia-db/models"
)

const scoreNotFound = "Score not found"

type ScoreHandler struct {
	store db.Store
	cfg   cliparse.Config
}

func NewScoreHandler(store db.Store, cfg cliparse.Config) *ScoreHandler {
	return &ScoreHandler{store: store, cfg: cfg}
}

// parseScore decodes and validates a score body, writing the error response
// itself when it fails. Bodies share the upload size cap.
func (h *ScoreHandler) parseScore(w http.ResponseWriter, r *http.Request) (models.Score, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	var req models.PlayerScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request too large")
			return models.Score{}, false
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.Score{}, false
	}

	score, err := req.Validate()
	if err != nil {
		validationError(w, err)
		return models.Score{}, false
	}
	return score, true
}

// Create handles POST /upload_player_score
func (h *ScoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	score, ok := h.parseScore(w, r)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(r.Context(), models.CollectionScores, score.Document())
	if err != nil {
		storeError(w, r, err, scoreNotFound)
		return
	}

	slog.Info("score recorded",
		"id", id,
		"player", score.PlayerName,
		"score", score.Score,
		"request_id", middleware.RequestID(r),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{
		Message: "Score recorded",
		ID:      id,
	})
}

// List handles GET /player_scores
func (h *ScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.Find(r.Context(), models.CollectionScores)
	if err != nil {
		storeError(w, r, err, scoreNotFound)
		return
	}

	scores := make([]models.Score, 0, len(docs))
	for _, doc := range docs {
		score, err := models.ScoreFromDocument(doc)
		if err != nil {
			storeError(w, r, err, scoreNotFound)
			return
		}
		scores = append(scores, score)
	}

	middleware.JSONResponse(w, http.StatusOK, scores)
}

// Get handles GET /player_score/{id}
func (h *ScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.FindOne(r.Context(), models.CollectionScores, r.PathValue("id"))
	if err != nil {
		storeError(w, r, err, scoreNotFound)
		return
	}

	score, err := models.ScoreFromDocument(doc)
	if err != nil {
		storeError(w, r, err, scoreNotFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, score)
}

// Update handles PUT /player_score/{id}
func (h *ScoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	score, ok := h.parseScore(w, r)
	if !ok {
		return
	}

	if err := h.store.UpdateOne(r.Context(), models.CollectionScores, id, score.Document()); err != nil {
		storeError(w, r, err, scoreNotFound)
		return
	}

	slog.Info("score updated", "id", id, "request_id", middleware.RequestID(r))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Score updated"})
}

// Delete handles DELETE /player_score/{id}
func (h *ScoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeleteOne(r.Context(), models.CollectionScores, id); err != nil {
		storeError(w, r, err, scoreNotFound)
		return
	}

	slog.Info("score deleted", "id", id, "request_id", middleware.RequestID(r))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Score deleted"})
}
