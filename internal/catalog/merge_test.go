package catalog

import (
	"testing"
	"time"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

func TestMergePreservesUserData(t *testing.T) {
	lastPlayed := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	existing := Document{
		Games: []metadata.GameMetadata{
			{
				ID:             "breakout",
				File:           "breakout/main.go",
				Title:          "Old Title",
				Description:    "Old description",
				Favorite:       true,
				Playtime:       3600,
				HighScore:      420,
				LastPlayed:     lastPlayed,
				CompletionRate: 0.75,
			},
		},
		HubSettings: map[string]any{"theme": "neon"},
	}

	discovered := []metadata.GameMetadata{
		{
			ID:          "breakout",
			File:        "breakout/main.go",
			Title:       "New Title",
			Description: "New description",
			Category:    metadata.CategoryArcade,
		},
	}

	merged := Merge(existing, discovered)

	if len(merged.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(merged.Games))
	}
	g := merged.Games[0]

	// Descriptive fields come from discovery.
	if g.Title != "New Title" {
		t.Errorf("Title = %q, want discovery's", g.Title)
	}
	if g.Description != "New description" {
		t.Errorf("Description = %q, want discovery's", g.Description)
	}

	// User data survives rediscovery.
	if !g.Favorite {
		t.Error("Favorite was lost")
	}
	if g.Playtime != 3600 {
		t.Errorf("Playtime = %d, want 3600", g.Playtime)
	}
	if g.HighScore != 420 {
		t.Errorf("HighScore = %d, want 420", g.HighScore)
	}
	if !g.LastPlayed.Equal(lastPlayed) {
		t.Errorf("LastPlayed = %v, want %v", g.LastPlayed, lastPlayed)
	}
	if g.CompletionRate != 0.75 {
		t.Errorf("CompletionRate = %v, want 0.75", g.CompletionRate)
	}
}

func TestMergeInsertsNewGames(t *testing.T) {
	existing := Document{HubSettings: map[string]any{"theme": "dark"}}
	discovered := []metadata.GameMetadata{
		{ID: "quiz", File: "quiz.go", Title: "Quiz"},
	}

	merged := Merge(existing, discovered)
	if len(merged.Games) != 1 || merged.Games[0].ID != "quiz" {
		t.Fatalf("got %+v, want the discovered game inserted", merged.Games)
	}
}

func TestMergeDropsMissingGames(t *testing.T) {
	existing := Document{
		Games: []metadata.GameMetadata{
			{ID: "kept", File: "kept.go"},
			{ID: "gone", File: "gone.go", Favorite: true},
		},
		HubSettings: map[string]any{"theme": "dark"},
	}
	discovered := []metadata.GameMetadata{
		{ID: "kept", File: "kept.go"},
	}

	merged := Merge(existing, discovered)
	if len(merged.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(merged.Games))
	}
	if merged.Games[0].ID != "kept" {
		t.Errorf("kept the wrong game: %q", merged.Games[0].ID)
	}
}

func TestMergeKeepsExistingID(t *testing.T) {
	existing := Document{
		Games: []metadata.GameMetadata{
			{ID: "custom_id", File: "game.go"},
		},
		HubSettings: map[string]any{"theme": "dark"},
	}
	discovered := []metadata.GameMetadata{
		{ID: "game", File: "game.go"},
	}

	merged := Merge(existing, discovered)
	if merged.Games[0].ID != "custom_id" {
		t.Errorf("ID = %q, want the existing %q kept", merged.Games[0].ID, "custom_id")
	}
}

func TestMergeHubSettings(t *testing.T) {
	// No settings at all: defaults are injected.
	merged := Merge(Document{}, nil)
	if merged.HubSettings["theme"] != "retro" {
		t.Errorf("theme = %v, want default retro", merged.HubSettings["theme"])
	}

	// Existing settings win, even partial ones.
	existing := Document{HubSettings: map[string]any{"theme": "neon"}}
	merged = Merge(existing, nil)
	if merged.HubSettings["theme"] != "neon" {
		t.Errorf("theme = %v, want existing neon", merged.HubSettings["theme"])
	}
	if _, ok := merged.HubSettings["layout"]; ok {
		t.Error("partial settings were topped up with defaults")
	}

	// The result must not alias the input map.
	merged.HubSettings["theme"] = "dark"
	if existing.HubSettings["theme"] != "neon" {
		t.Error("Merge returned the existing settings map by reference")
	}
}
