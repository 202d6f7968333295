package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

func TestLoadMissingFile(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() failed for a missing file: %v", err)
	}
	if len(doc.Games) != 0 {
		t.Errorf("got %d games from a missing file, want 0", len(doc.Games))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games_config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on corrupt JSON, want an error")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "games_config.json")

	doc := Document{
		Games: []metadata.GameMetadata{
			{
				ID:        "breakout",
				Title:     "Retro Breakout",
				File:      "breakout/main.go",
				Category:  metadata.CategoryArcade,
				Favorite:  true,
				HighScore: 99,
			},
		},
		HubSettings: DefaultHubSettings(),
	}

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(loaded.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(loaded.Games))
	}
	g := loaded.Games[0]
	if g.ID != "breakout" || g.Title != "Retro Breakout" || !g.Favorite || g.HighScore != 99 {
		t.Errorf("roundtrip changed the game: %+v", g)
	}
	if loaded.HubSettings["theme"] != "retro" {
		t.Errorf("theme = %v, want retro", loaded.HubSettings["theme"])
	}
}

func TestLoadDerivesMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games_config.json")
	raw := `{"games": [
		{"title": "A", "file": "snake_game/main.go"},
		{"title": "B", "file": "tetris.go"}
	]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if doc.Games[0].ID != "snake_game" {
		t.Errorf("ID = %q, want snake_game", doc.Games[0].ID)
	}
	if doc.Games[1].ID != "tetris" {
		t.Errorf("ID = %q, want tetris", doc.Games[1].ID)
	}
}

func TestFind(t *testing.T) {
	doc := Document{Games: []metadata.GameMetadata{{ID: "pong"}}}

	if _, ok := doc.Find("pong"); !ok {
		t.Error("Find() missed an existing game")
	}
	if _, ok := doc.Find("nope"); ok {
		t.Error("Find() matched a missing game")
	}
}
