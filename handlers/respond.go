// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/multimedia-db/db"
	"github.com/danielhkuo/multimedia-db/middleware"
	"github.com/danielhkuo/multimedia-db/models"
)

// storeError maps a store failure onto an HTTP error response.
// notFound is the message for a missing document.
func storeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, db.ErrInvalidID):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, db.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	default:
		slog.Error("store operation failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.RequestID(r),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// validationError answers 400 with the validation message.
func validationError(w http.ResponseWriter, err error) {
	message := err.Error()
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		message = vErr.Message
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, message)
}
