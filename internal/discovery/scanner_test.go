package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

const validGame = `// Test Game
//
// Jump over things on the platform.
package main

func main() {}
`

const brokenGame = `package main

func main( {  // does not parse
`

func writeGame(t *testing.T, dir, rel, src string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanMissingDir(t *testing.T) {
	s := NewScanner(filepath.Join(t.TempDir(), "nope"), nil)

	res, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan() failed for a missing folder: %v", err)
	}
	if len(res.Games) != 0 || len(res.Errors) != 0 {
		t.Errorf("got %d games / %d errors, want empty", len(res.Games), len(res.Errors))
	}
}

func TestScanContinuesPastBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeGame(t, dir, "alpha.go", validGame)
	writeGame(t, dir, "broken.go", brokenGame)
	writeGame(t, dir, "beta/main.go", validGame)

	res, err := NewScanner(dir, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}

	if len(res.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(res.Games))
	}
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(res.Errors))
	}
	if res.Errors[0].File != "broken.go" {
		t.Errorf("error file = %q, want broken.go", res.Errors[0].File)
	}
}

func TestScanLayouts(t *testing.T) {
	dir := t.TempDir()
	writeGame(t, dir, "flat_game.go", validGame)
	writeGame(t, dir, "dir_game/main.go", validGame)

	res, err := NewScanner(dir, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(res.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(res.Games))
	}

	byID := map[string]metadata.GameMetadata{}
	for _, g := range res.Games {
		byID[g.ID] = g
	}

	if g, ok := byID["flat_game"]; !ok || g.File != "flat_game.go" {
		t.Errorf("flat layout: got %+v", g)
	}
	if g, ok := byID["dir_game"]; !ok || g.File != "dir_game/main.go" {
		t.Errorf("directory layout: got %+v", g)
	}
}

func TestScanSkipsHiddenAndUnderscore(t *testing.T) {
	dir := t.TempDir()
	writeGame(t, dir, ".hidden.go", validGame)
	writeGame(t, dir, "_draft.go", validGame)
	writeGame(t, dir, "real.go", validGame)

	res, err := NewScanner(dir, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(res.Games) != 1 || res.Games[0].ID != "real" {
		t.Errorf("got %+v, want only real.go", res.Games)
	}
}

func TestScanExtractsMetadata(t *testing.T) {
	dir := t.TempDir()
	writeGame(t, dir, "hopper.go", validGame)

	res, err := NewScanner(dir, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(res.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(res.Games))
	}

	g := res.Games[0]
	if g.Title != "Test Game" {
		t.Errorf("Title = %q, want Test Game", g.Title)
	}
	if g.Category != metadata.CategoryPlatformer {
		t.Errorf("Category = %q, want platformer", g.Category)
	}
}
