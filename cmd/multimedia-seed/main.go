// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command multimedia-seed creates the sprites, audio and scores collections
// and inserts one sample document into each.
//
//	multimedia-seed -t mongo -d mongodb://localhost:27017 -n multimedia_db
//	multimedia-seed -dry-run
//
// Running it twice against the same database fails on the first step, since
// the collections already exist.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/multimedia-db/cliparse"
	"github.com/danielhkuo/multimedia-db/db"
	"github.com/danielhkuo/multimedia-db/logging"
	"github.com/danielhkuo/multimedia-db/seed"
)

func main() {
	cfg, err := cliparse.ParseSeedFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.LogLevel); err != nil {
		slog.Error("Error configuring logging", "error", err)
		os.Exit(1)
	}

	if cfg.DryRun {
		steps, err := seed.Plan()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("use %s\n", cfg.DatabaseName)
		for _, step := range steps {
			fmt.Println(step.Description)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg.Config)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	slog.Info("using database", "type", cfg.DatabaseType, "name", cfg.DatabaseName)

	err = seed.Run(ctx, store)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	slog.Info("seed complete")
}
