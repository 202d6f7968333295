package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads a catalog document from path. A missing file is not an
// error: it yields an empty document so first runs work from defaults.
// A file that exists but does not parse is reported loudly; silently
// discarding a catalog would lose user playtime and high scores.
//
// For backward compatibility with hand-edited documents, entries
// missing an id get one derived from their file path.
func Load(path string) (Document, error) {
	var doc Document

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("catalog: cannot read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("catalog: cannot parse %s: %w", path, err)
	}

	for i := range doc.Games {
		if doc.Games[i].ID == "" {
			doc.Games[i].ID = idFromFile(doc.Games[i].File)
		}
	}

	return doc, nil
}

// Save writes the document to path, creating parent directories as
// needed. Callers are expected to save once, after a full scan and
// merge, never mid-discovery.
func Save(path string, doc Document) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("catalog: cannot create directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: cannot encode document: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("catalog: cannot write %s: %w", path, err)
	}

	return nil
}
