// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/multimedia-db/models"
	"github.com/danielhkuo/multimedia-db/testutil"
)

// TestConcurrentScoreSubmissions verifies that simultaneous score submissions
// all land with distinct ids
func TestConcurrentScoreSubmissions(t *testing.T) {
	store := testutil.SetupTestStoreWithCollections(t)
	handler := NewScoreHandler(store, testutil.GetTestConfig())

	numPlayers := 10

	// Track results
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numPlayers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.PlayerScoreRequest{
				PlayerName: fmt.Sprintf("Player %d", idx),
				Score:      intPtr(idx * 100),
			}
			req := testutil.MakeRequest("POST", "/upload_player_score", body, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numPlayers {
		t.Errorf("Expected %d successful submissions, got %d", numPlayers, successCount.Load())
	}

	docs, err := store.Find(context.Background(), models.CollectionScores)
	if err != nil {
		t.Fatalf("Failed to list scores: %v", err)
	}
	if len(docs) != numPlayers {
		t.Errorf("Expected %d scores in store, got %d", numPlayers, len(docs))
	}

	seen := map[string]bool{}
	for _, doc := range docs {
		id, _ := doc[models.FieldID].(string)
		if seen[id] {
			t.Errorf("Duplicate id %s", id)
		}
		seen[id] = true
	}
}

// TestConcurrentUpdatesSameSprite verifies that racing updates leave one
// complete version, never a mix of two uploads
func TestConcurrentUpdatesSameSprite(t *testing.T) {
	store := testutil.SetupTestStoreWithCollections(t)
	handler := NewAssetHandler(store, testutil.GetTestConfig(), models.SpriteKind)
	id := testutil.InsertTestAsset(t, store, models.CollectionSprites, "start.png", pngBytes)

	numWriters := 5
	var wg sync.WaitGroup

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			filename := fmt.Sprintf("frame%d.png", idx)
			content := []byte{byte(idx), byte(idx), byte(idx)}
			req := testutil.MakeUploadRequest(t, "PUT", "/sprite/"+id, filename, content)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.Update(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Update %d failed: %d %s", idx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	doc, err := store.FindOne(context.Background(), models.CollectionSprites, id)
	if err != nil {
		t.Fatalf("Failed to find sprite: %v", err)
	}
	asset, err := models.AssetFromDocument(doc)
	if err != nil {
		t.Fatalf("Failed to read sprite: %v", err)
	}

	var idx int
	if _, err := fmt.Sscanf(asset.Filename, "frame%d.png", &idx); err != nil {
		t.Fatalf("Unexpected filename %q", asset.Filename)
	}
	expected := []byte{byte(idx), byte(idx), byte(idx)}
	if string(asset.Content) != string(expected) {
		t.Errorf("Filename %s paired with content %x", asset.Filename, asset.Content)
	}
}
