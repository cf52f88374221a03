// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoNamespaceExists is the server error code for a duplicate createCollection.
const mongoNamespaceExists = 48

// MongoStore is a Store backed by one MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to uri and binds the store to the named database.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		return nil, errors.New("mongo database name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStore{client: client, db: client.Database(database)}, nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == mongoNamespaceExists
	}
	return false
}

// CreateCollection issues createCollection. The server rejects existing
// names, which surfaces as ErrCollectionExists.
func (s *MongoStore) CreateCollection(ctx context.Context, name string) error {
	if err := validateCollection(name); err != nil {
		return err
	}

	if err := s.db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExists(err) {
			return fmt.Errorf("%w: %q", ErrCollectionExists, name)
		}
		return fmt.Errorf("failed to create collection %q: %w", name, err)
	}
	return nil
}

// ListCollections returns collection names in sorted order.
func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// collection returns the handle for name once it is known to exist. Mongo
// would otherwise create missing collections implicitly on first write.
func (s *MongoStore) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	if err := validateCollection(name); err != nil {
		return nil, err
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return nil, fmt.Errorf("failed to look up collection %q: %w", name, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}
	return s.db.Collection(name), nil
}

// InsertOne inserts doc into an existing collection.
func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	coll, err := s.collection(ctx, collection)
	if err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	toInsert := withoutID(doc)
	toInsert[IDField] = oid

	if _, err := coll.InsertOne(ctx, bson.M(toInsert)); err != nil {
		return "", fmt.Errorf("failed to insert document in %q: %w", collection, err)
	}
	return oid.Hex(), nil
}

// Find returns every document ordered by _id, which tracks insertion order.
func (s *MongoStore) Find(ctx context.Context, collection string) ([]Document, error) {
	coll, err := s.collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: IDField, Value: 1}})
	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents in %q: %w", collection, err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read documents in %q: %w", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, normalize(m))
	}
	return docs, nil
}

// FindOne returns the document with the given id or ErrNotFound.
func (s *MongoStore) FindOne(ctx context.Context, collection, id string) (Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := s.collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	var raw bson.M
	err = coll.FindOne(ctx, bson.M{IDField: oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document in %q: %w", collection, err)
	}
	return normalize(raw), nil
}

// UpdateOne applies set with $set.
func (s *MongoStore) UpdateOne(ctx context.Context, collection, id string, set Document) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	coll, err := s.collection(ctx, collection)
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{IDField: oid},
		bson.M{"$set": bson.M(withoutID(set))},
	)
	if err != nil {
		return fmt.Errorf("failed to update document in %q: %w", collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOne removes the document with the given id or returns ErrNotFound.
func (s *MongoStore) DeleteOne(ctx context.Context, collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	coll, err := s.collection(ctx, collection)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{IDField: oid})
	if err != nil {
		return fmt.Errorf("failed to delete document in %q: %w", collection, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
