// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/danielhkuo/multimedia-db/cliparse"
)

// Database types accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeMongo    = "mongo"
)

var (
	ErrCollectionExists   = errors.New("collection already exists")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrInvalidCollection  = errors.New("invalid collection name")
	ErrNotFound           = errors.New("document not found")
	ErrInvalidID          = errors.New("invalid document id")
)

// Document is a schemaless record. Binary values are []byte and the
// store-assigned id lives under IDField as a hex string.
type Document map[string]any

// IDField is the key of the document id
const IDField = "_id"

// Store is a document database: named collections of documents.
type Store interface {
	CreateCollection(ctx context.Context, name string) error
	ListCollections(ctx context.Context) ([]string, error)
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)
	Find(ctx context.Context, collection string) ([]Document, error)
	FindOne(ctx context.Context, collection, id string) (Document, error)
	UpdateOne(ctx context.Context, collection, id string, set Document) error
	DeleteOne(ctx context.Context, collection, id string) error
	Close() error
}

// Open connects to the database described by cfg and verifies the connection.
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.DatabaseType {
	case TypeSQLite:
		return OpenSQLite(ctx, cfg.DatabaseURL)
	case TypePostgres:
		return OpenPostgres(ctx, cfg.DatabaseURL)
	case TypeMongo:
		return OpenMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// Collection names end up as SQL identifiers, so keep them boring.
var collectionNameRe = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

func validateCollection(name string) error {
	if !collectionNameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// withoutID copies doc minus the id field. Callers never get to pick ids.
func withoutID(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}
