package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ExportVersion tags exported documents.
const ExportVersion = "2.0.0"

// ExportData is the combined export document: profile and statistics
// bundled wholesale.
type ExportData struct {
	Profile    *Profile  `json:"profile,omitempty"`
	Stats      *Stats    `json:"stats,omitempty"`
	ExportDate time.Time `json:"export_date"`
	Version    string    `json:"version"`
}

// Export writes the combined profile+stats document to path.
func (m *Manager) Export(path string) error {
	data, err := json.MarshalIndent(ExportData{
		Profile:    m.profile,
		Stats:      m.stats,
		ExportDate: m.now(),
		Version:    ExportVersion,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: cannot encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profile: cannot write export %s: %w", path, err)
	}
	return nil
}

// Import reads a combined document and overwrites in-memory and
// persisted state unconditionally for each top-level key present.
func (m *Manager) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("profile: cannot read import %s: %w", path, err)
	}

	var in ExportData
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("profile: cannot parse import %s: %w", path, err)
	}

	if in.Profile != nil {
		in.Profile.normalize()
		m.profile = in.Profile
		if err := m.saveProfile(); err != nil {
			return err
		}
	}

	if in.Stats != nil {
		in.Stats.normalize()
		m.stats = in.Stats
		if err := m.saveStats(); err != nil {
			return err
		}
	}

	return nil
}
