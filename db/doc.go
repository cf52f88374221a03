// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the document store behind the seed tool and the API.

# Store

Store is a small document-database surface: named collections of
schemaless documents, each with a store-assigned ObjectID.

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	id, err := store.InsertOne(ctx, "scores", db.Document{
		"player_name": "Rick",
		"score":       2000,
	})

# Backends

Open picks a backend from Config.DatabaseType:

  - sqlite: modernc.org/sqlite, one table per collection
  - postgres: lib/pq, one table per collection
  - mongo: native collections in Config.DatabaseName

The SQL backends store each document as a BSON body next to its id, so
binary values come back as []byte exactly like they do from Mongo.

# Errors

	ErrCollectionExists   CreateCollection on an existing name
	ErrCollectionNotFound operation on a missing collection
	ErrNotFound           no document with that id
	ErrInvalidID          id is not 24 hex characters
	ErrInvalidCollection  name outside [a-z_][a-z0-9_]*

Match them with errors.Is.

# Schema

EnsureCollections creates whatever is missing and ignores the rest:

	db.EnsureCollections(ctx, store, "sprites", "audio", "scores")

OpenWithCollections does Open plus EnsureCollections, closing the store
when the second step fails.
*/
package db
