// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an X-Request-ID, either the caller's or a
fresh UUID; handlers read it with RequestID(r) for their own log lines.

# CORS Middleware

Enable cross-origin requests for game clients:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Any origin may call the API (Access-Control-Allow-Origin: *) with methods
GET, POST, PUT, DELETE, OPTIONS and headers Content-Type, X-Request-ID.
Credentials are not allowed.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.PlayerScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for the remote field of the request log.
*/
package middleware
