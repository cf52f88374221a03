// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/multimedia-db/cliparse"
)

// EnsureCollections creates any of the named collections that are missing.
// Safe to call multiple times - existing collections are left alone.
func EnsureCollections(ctx context.Context, s Store, names ...string) error {
	for _, name := range names {
		err := s.CreateCollection(ctx, name)
		if err != nil && !errors.Is(err, ErrCollectionExists) {
			return fmt.Errorf("failed to ensure collection %q: %w", name, err)
		}
	}
	return nil
}

// OpenWithCollections opens the configured store and ensures the named
// collections. The store is closed again if setup fails.
func OpenWithCollections(ctx context.Context, cfg cliparse.Config, names ...string) (Store, error) {
	store, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := EnsureCollections(ctx, store, names...); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
