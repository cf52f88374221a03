// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/multimedia-db/cliparse"
	"github.com/danielhkuo/multimedia-db/db"
	"github.com/danielhkuo/multimedia-db/middleware"
	"github.com/danielhkuo/multimedia-db/models"
)

var errTooLarge = errors.New("upload too large")

// AssetHandler serves one binary-asset collection (sprites or audio).
type AssetHandler struct {
	store db.Store
	cfg   cliparse.Config
	kind  models.AssetKind
}

func NewAssetHandler(store db.Store, cfg cliparse.Config, kind models.AssetKind) *AssetHandler {
	return &AssetHandler{store: store, cfg: cfg, kind: kind}
}

func (h *AssetHandler) notFound() string {
	return h.kind.Label + " not found"
}

// readUpload pulls the "file" part out of a multipart request.
func (h *AssetHandler) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	if r.ContentLength > h.cfg.MaxUploadBytes {
		return "", nil, errTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, errTooLarge
		}
		return "", nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, content, nil
}

// upload reads and validates the request file, writing the error response
// itself when it fails.
func (h *AssetHandler) upload(w http.ResponseWriter, r *http.Request) (models.Asset, bool) {
	filename, content, err := h.readUpload(w, r)
	if errors.Is(err, errTooLarge) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "File too large")
		return models.Asset{}, false
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "A multipart file field named 'file' is required")
		return models.Asset{}, false
	}

	if err := h.kind.ValidateUpload(filename, content); err != nil {
		validationError(w, err)
		return models.Asset{}, false
	}
	return models.Asset{Filename: filename, Content: content}, true
}

// Upload handles POST /upload_sprite and POST /upload_audio
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	asset, ok := h.upload(w, r)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(r.Context(), h.kind.Collection, asset.Document())
	if err != nil {
		storeError(w, r, err, h.notFound())
		return
	}

	slog.Info("asset uploaded",
		"collection", h.kind.Collection,
		"id", id,
		"filename", asset.Filename,
		"size", humanize.Bytes(uint64(len(asset.Content))),
		"request_id", middleware.RequestID(r),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{
		Message: h.kind.UploadedMessage,
		ID:      id,
	})
}

// List handles GET /sprites and GET /audios
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.Find(r.Context(), h.kind.Collection)
	if err != nil {
		storeError(w, r, err, h.notFound())
		return
	}

	assets := make([]models.AssetResponse, 0, len(docs))
	for _, doc := range docs {
		asset, err := models.AssetFromDocument(doc)
		if err != nil {
			storeError(w, r, err, h.notFound())
			return
		}
		assets = append(assets, asset.Response())
	}

	middleware.JSONResponse(w, http.StatusOK, assets)
}

// Get handles GET /sprite/{id} and GET /audio/{id}
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.FindOne(r.Context(), h.kind.Collection, r.PathValue("id"))
	if err != nil {
		storeError(w, r, err, h.notFound())
		return
	}

	asset, err := models.AssetFromDocument(doc)
	if err != nil {
		storeError(w, r, err, h.notFound())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, asset.Response())
}

// Update handles PUT /sprite/{id} and PUT /audio/{id}
// The uploaded file replaces both filename and content.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	asset, ok := h.upload(w, r)
	if !ok {
		return
	}

	if err := h.store.UpdateOne(r.Context(), h.kind.Collection, id, asset.Document()); err != nil {
		storeError(w, r, err, h.notFound())
		return
	}

	slog.Info("asset updated",
		"collection", h.kind.Collection,
		"id", id,
		"filename", asset.Filename,
		"size", humanize.Bytes(uint64(len(asset.Content))),
		"request_id", middleware.RequestID(r),
	)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: h.kind.UpdatedMessage})
}

// Delete handles DELETE /sprite/{id} and DELETE /audio/{id}
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeleteOne(r.Context(), h.kind.Collection, id); err != nil {
		storeError(w, r, err, h.notFound())
		return
	}

	slog.Info("asset deleted",
		"collection", h.kind.Collection,
		"id", id,
		"request_id", middleware.RequestID(r),
	)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: h.kind.DeletedMessage})
}
