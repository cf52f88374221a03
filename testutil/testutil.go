// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/multimedia-db/cliparse"
	"github.com/danielhkuo/multimedia-db/db"
	"github.com/danielhkuo/multimedia-db/models"
)

// SetupTestStore opens an empty sqlite store in a temp dir.
// It is closed when the test ends.
func SetupTestStore(t *testing.T) *db.SQLStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := db.OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// SetupTestStoreWithCollections is SetupTestStore plus the three collections.
func SetupTestStoreWithCollections(t *testing.T) *db.SQLStore {
	t.Helper()

	store := SetupTestStore(t)
	if err := db.EnsureCollections(context.Background(), store, models.Collections...); err != nil {
		t.Fatalf("Failed to create collections: %v", err)
	}
	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8000,
		DatabaseURL:    "test.db",
		DatabaseType:   "sqlite",
		DatabaseName:   "multimedia_db",
		MaxUploadBytes: 1 << 20,
		LogLevel:       "info",
	}
}

// InsertTestAsset stores an asset directly and returns its id
func InsertTestAsset(t *testing.T, store db.Store, collection, filename string, content []byte) string {
	t.Helper()

	asset := models.Asset{Filename: filename, Content: content}
	id, err := store.InsertOne(context.Background(), collection, asset.Document())
	if err != nil {
		t.Fatalf("Failed to insert test asset: %v", err)
	}
	return id
}

// InsertTestScore stores a score directly and returns its id
func InsertTestScore(t *testing.T, store db.Store, playerName string, score int) string {
	t.Helper()

	s := models.Score{PlayerName: playerName, Score: score}
	id, err := store.InsertOne(context.Background(), models.CollectionScores, s.Document())
	if err != nil {
		t.Fatalf("Failed to insert test score: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeUploadRequest creates a multipart request with a single "file" part
func MakeUploadRequest(t *testing.T, method, path, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
