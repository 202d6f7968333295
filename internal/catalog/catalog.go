// Package catalog owns the persisted games catalog: a single JSON
// document unifying discovered game metadata with user-owned fields
// (playtime, high score, favorites) across runs. Discovery rewrites
// the descriptive fields on every scan; the merge in merge.go keeps
// the user-owned fields from being clobbered.
//
// The catalog assumes a single active hub process. Two processes
// rewriting the same document race with last-writer-wins semantics.
package catalog

import (
	"path/filepath"
	"strings"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

// DefaultPath is the default catalog document location, relative to
// the hub working directory.
const DefaultPath = "games_config.json"

// Document is the top-level catalog schema: the ordered game list
// (discovery order, not significant) plus flat hub settings.
type Document struct {
	Games       []metadata.GameMetadata `json:"games"`
	HubSettings map[string]any          `json:"hub_settings,omitempty"`
}

// DefaultHubSettings returns the initial hub settings, injected only
// when a loaded document has none at all. Existing settings are never
// backfilled key by key.
func DefaultHubSettings() map[string]any {
	return map[string]any{
		"theme":             "retro",
		"layout":            "grid",
		"auto_update":       true,
		"analytics":         false,
		"cloud_sync":        false,
		"parental_controls": false,
	}
}

// Find returns the game with the given id, or false.
func (d Document) Find(id string) (metadata.GameMetadata, bool) {
	for _, g := range d.Games {
		if g.ID == id {
			return g, true
		}
	}
	return metadata.GameMetadata{}, false
}

// idFromFile derives a stable id from a game's file path: the base
// name stem, or the directory name for <dir>/main.go entries.
func idFromFile(file string) string {
	dir, base := filepath.Split(filepath.ToSlash(file))
	if base == "main.go" && dir != "" {
		return filepath.Base(filepath.Clean(dir))
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
