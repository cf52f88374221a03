// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config for the API server, ParseSeedFlags a SeedConfig
for the seed tool:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: sqlite path, postgres URL or mongodb URL (default: multimedia.db)
  - DatabaseType: sqlite, postgres or mongo (default: sqlite)
  - DatabaseName: Mongo database (default: multimedia_db)
  - MaxUploadBytes: Upload size cap (default: 10 MiB)
  - LogLevel: debug, info, warn or error (default: info)

# Sources

Values are layered, later wins:

 1. .env in the working directory, if present
 2. Environment variables (PORT, DATABASE_URL, DATABASE_TYPE,
    DATABASE_NAME, MAX_UPLOAD_BYTES, LOG_LEVEL)
 3. Flags (-p, -d, -t, -n, -max-upload, -log-level)

The seed tool also takes -dry-run.
*/
package cliparse
