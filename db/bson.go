// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// encodeBody serializes a document for the SQL backends. BSON keeps the
// binary/text distinction that JSON would lose.
func encodeBody(doc Document) ([]byte, error) {
	body, err := bson.Marshal(withoutID(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return body, nil
}

func decodeBody(id string, body []byte) (Document, error) {
	var raw bson.M
	if err := bson.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	doc := normalize(raw)
	doc[IDField] = id
	return doc, nil
}

// normalize converts driver types into plain Go values so callers see the
// same shapes from every backend.
func normalize(m bson.M) Document {
	doc := make(Document, len(m))
	for k, v := range m {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case primitive.Binary:
		return val.Data
	case primitive.ObjectID:
		return val.Hex()
	case int32:
		return int64(val)
	case bson.M:
		return map[string]any(normalize(val))
	case bson.D:
		return map[string]any(normalize(val.Map()))
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
