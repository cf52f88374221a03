// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the multimedia-db API server.

multimedia-db stores game assets for a small game: sprite images, audio
clips and player scores. Each lives in its own collection and is served
over a plain HTTP/JSON API.

# Starting the Server

With no configuration the server uses a local sqlite file:

	go run .

Against MongoDB:

	DATABASE_TYPE=mongo DATABASE_URL=mongodb://localhost:27017 go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..."

# Configuration

Settings come from .env, then the environment, then flags:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - DATABASE_URL (-d): sqlite path or connection URL (default: multimedia.db)
  - DATABASE_NAME (-n): Mongo database name (default: multimedia_db)
  - MAX_UPLOAD_BYTES (-max-upload): Upload limit (default: 10 MiB)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Seeding

cmd/multimedia-seed creates the three collections and inserts one
sample score, audio clip and sprite. See package seed.

# Architecture

  - handlers: HTTP request handlers (sprites, audio, scores)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request ids, JSON helpers
  - models: Documents, request/response types and validation
  - db: Store interface with sqlite, postgres and mongo backends
  - seed: The seed plan and its embedded fixtures
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
