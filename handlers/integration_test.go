// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/multimedia-db/models"
	"github.com/danielhkuo/multimedia-db/seed"
	"github.com/danielhkuo/multimedia-db/testutil"
)

// TestSeededDataThroughAPI seeds a fresh store and then walks the seeded
// records through the API:
// 1. Seed
// 2. List scores, audio, sprites
// 3. Fetch each seeded asset by id
// 4. Replace the sprite
// 5. Delete the audio file
func TestSeededDataThroughAPI(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()

	// Step 1: Seed
	if err := seed.Run(context.Background(), store); err != nil {
		t.Fatalf("Step 1 - Seed failed: %v", err)
	}

	scoreHandler := NewScoreHandler(store, cfg)
	spriteHandler := NewAssetHandler(store, cfg, models.SpriteKind)
	audioHandler := NewAssetHandler(store, cfg, models.AudioKind)

	// Step 2: List
	w := httptest.NewRecorder()
	scoreHandler.List(w, httptest.NewRequest("GET", "/player_scores", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var scores []models.Score
	testutil.AssertJSON(t, w, &scores)
	if len(scores) != 1 || scores[0].PlayerName != "Rick" || scores[0].Score != 2000 {
		t.Fatalf("Step 2 - Unexpected scores: %+v", scores)
	}

	listAssets := func(h *AssetHandler, path string) []models.AssetResponse {
		t.Helper()
		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest("GET", path, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		var assets []models.AssetResponse
		testutil.AssertJSON(t, w, &assets)
		return assets
	}

	audios := listAssets(audioHandler, "/audios")
	if len(audios) != 1 || audios[0].Filename != "wifikun.ogg" {
		t.Fatalf("Step 2 - Unexpected audio: %+v", audios)
	}
	// "OggS" in hex
	if len(audios[0].Content) < 8 || audios[0].Content[:8] != "4f676753" {
		t.Errorf("Step 2 - Audio content does not start with OggS: %.16s", audios[0].Content)
	}

	sprites := listAssets(spriteHandler, "/sprites")
	if len(sprites) != 1 || sprites[0].Filename != "rick astley.jpeg" {
		t.Fatalf("Step 2 - Unexpected sprites: %+v", sprites)
	}
	if len(sprites[0].Content) < 6 || sprites[0].Content[:6] != "ffd8ff" {
		t.Errorf("Step 2 - Sprite content is not a JPEG: %.16s", sprites[0].Content)
	}

	// Step 3: Fetch by id
	req := httptest.NewRequest("GET", "/sprite/"+sprites[0].ID, nil)
	req.SetPathValue("id", sprites[0].ID)
	w = httptest.NewRecorder()
	spriteHandler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 4: Replace the sprite
	req = testutil.MakeUploadRequest(t, "PUT", "/sprite/"+sprites[0].ID, "never gonna.png", pngBytes)
	req.SetPathValue("id", sprites[0].ID)
	w = httptest.NewRecorder()
	spriteHandler.Update(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	sprites = listAssets(spriteHandler, "/sprites")
	if len(sprites) != 1 || sprites[0].Filename != "never gonna.png" {
		t.Errorf("Step 4 - Sprite not replaced: %+v", sprites)
	}

	// Step 5: Delete the audio file
	req = httptest.NewRequest("DELETE", "/audio/"+audios[0].ID, nil)
	req.SetPathValue("id", audios[0].ID)
	w = httptest.NewRecorder()
	audioHandler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if audios = listAssets(audioHandler, "/audios"); len(audios) != 0 {
		t.Errorf("Step 5 - Expected no audio left, got %d", len(audios))
	}
}
