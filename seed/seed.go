// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/multimedia-db/db"
	"github.com/danielhkuo/multimedia-db/models"
)

// Database is the part of db.Store the seed writes through.
type Database interface {
	CreateCollection(ctx context.Context, name string) error
	InsertOne(ctx context.Context, collection string, doc db.Document) (string, error)
}

// Step is one seed operation.
type Step struct {
	Description string
	apply       func(ctx context.Context, database Database) error
}

// Plan returns the seed steps in execution order: create sprites, audio and
// scores, then insert the score, the audio file and the sprite.
func Plan() ([]Step, error) {
	audio, err := audioFixture.asset()
	if err != nil {
		return nil, err
	}
	sprite, err := spriteFixture.asset()
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(models.Collections)+3)
	for _, name := range models.Collections {
		steps = append(steps, createStep(name))
	}
	steps = append(steps,
		insertStep(models.CollectionScores, scoreFixture.Document(), 0),
		insertStep(audioFixture.kind.Collection, audio.Document(), len(audio.Content)),
		insertStep(spriteFixture.kind.Collection, sprite.Document(), len(sprite.Content)),
	)
	return steps, nil
}

func createStep(name string) Step {
	return Step{
		Description: fmt.Sprintf("create collection %q", name),
		apply: func(ctx context.Context, database Database) error {
			if err := database.CreateCollection(ctx, name); err != nil {
				return err
			}
			slog.Info("collection created", "collection", name)
			return nil
		},
	}
}

func insertStep(collection string, doc db.Document, size int) Step {
	return Step{
		Description: fmt.Sprintf("insert into %q", collection),
		apply: func(ctx context.Context, database Database) error {
			id, err := database.InsertOne(ctx, collection, doc)
			if err != nil {
				return err
			}
			attrs := []any{"collection", collection, "id", id}
			if size > 0 {
				attrs = append(attrs, "content_size", humanize.Bytes(uint64(size)))
			}
			slog.Info("document inserted", attrs...)
			return nil
		},
	}
}

// Run applies every step in order and stops at the first failure.
// Nothing is rolled back, and running twice fails with db.ErrCollectionExists.
func Run(ctx context.Context, database Database) error {
	steps, err := Plan()
	if err != nil {
		return err
	}

	for _, step := range steps {
		if err := step.apply(ctx, database); err != nil {
			return fmt.Errorf("%s: %w", step.Description, err)
		}
	}

	slog.Info("seed complete", "steps", len(steps))
	return nil
}
