// Package profile owns per-user state: preferences, favorites,
// achievements, and play statistics. Each profile is two JSON
// documents under the data directory: <name>.json for the profile and
// <name>_stats.json for statistics. Every mutation persists the whole
// affected document immediately (write-through, no batching).
//
// The package assumes a single active process per profile. There is
// no file locking; two processes mutating the same profile race with
// last-writer-wins semantics.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultDataDir is the default root for profile documents.
const DefaultDataDir = "data/profiles"

// Achievement is one unlocked achievement.
type Achievement struct {
	UnlockedDate time.Time `json:"unlocked_date"`
	GameID       string    `json:"game_id,omitempty"`
	Description  string    `json:"description,omitempty"`
}

// ParentalSettings is carried in the profile document but not
// enforced by the hub yet.
type ParentalSettings struct {
	Enabled           bool     `json:"enabled"`
	TimeLimitMinutes  int      `json:"time_limit_minutes"`
	AllowedCategories []string `json:"allowed_categories"`
}

// Profile is the persisted per-user document.
type Profile struct {
	Name             string                 `json:"name"`
	CreatedDate      time.Time              `json:"created_date"`
	LastActive       time.Time              `json:"last_active"`
	Preferences      map[string]any         `json:"preferences"`
	Achievements     map[string]Achievement `json:"achievements"`
	Favorites        []string               `json:"favorites"`
	BlockedGames     []string               `json:"blocked_games"`
	ParentalSettings ParentalSettings       `json:"parental_settings"`
}

// Manager loads a profile and its statistics on creation and persists
// them on every mutating call.
type Manager struct {
	name        string
	profilePath string
	statsPath   string
	profile     *Profile
	stats       *Stats

	// now is swappable for tests that pin the clock.
	now func() time.Time
}

// Open loads (or creates with defaults) the named profile under
// dataDir. Missing documents are silently created; documents that
// exist but do not parse are a loud error, never discarded.
func Open(dataDir, name string) (*Manager, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if name == "" {
		name = "default"
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("profile: cannot create data directory %s: %w", dataDir, err)
	}

	m := &Manager{
		name:        name,
		profilePath: filepath.Join(dataDir, name+".json"),
		statsPath:   filepath.Join(dataDir, name+"_stats.json"),
		now:         time.Now,
	}

	if err := m.loadProfile(); err != nil {
		return nil, err
	}
	if err := m.loadStats(); err != nil {
		return nil, err
	}

	return m, nil
}

// Name returns the profile name.
func (m *Manager) Name() string { return m.name }

// Profile returns the in-memory profile document.
func (m *Manager) Profile() *Profile { return m.profile }

// Stats returns the in-memory statistics document.
func (m *Manager) Stats() *Stats { return m.stats }

func (m *Manager) loadProfile() error {
	data, err := os.ReadFile(m.profilePath)
	if errors.Is(err, fs.ErrNotExist) {
		m.profile = m.defaultProfile()
		return m.saveProfile()
	}
	if err != nil {
		return fmt.Errorf("profile: cannot read %s: %w", m.profilePath, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("profile: cannot parse %s: %w", m.profilePath, err)
	}

	p.normalize()
	m.profile = &p
	return nil
}

// normalize replaces nil maps left by decoding sparse documents.
func (p *Profile) normalize() {
	if p.Preferences == nil {
		p.Preferences = map[string]any{}
	}
	if p.Achievements == nil {
		p.Achievements = map[string]Achievement{}
	}
}

func (m *Manager) defaultProfile() *Profile {
	now := m.now()
	return &Profile{
		Name:        m.name,
		CreatedDate: now,
		LastActive:  now,
		Preferences: map[string]any{
			"theme":                 "retro",
			"layout":                "grid",
			"sound_enabled":         true,
			"music_enabled":         true,
			"volume":                0.7,
			"auto_save":             true,
			"show_fps":              false,
			"difficulty_preference": "medium",
		},
		Achievements: map[string]Achievement{},
		Favorites:    []string{},
		BlockedGames: []string{},
	}
}

// saveProfile writes the whole profile document, stamping last_active
// as a side effect of every save.
func (m *Manager) saveProfile() error {
	m.profile.LastActive = m.now()

	data, err := json.MarshalIndent(m.profile, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: cannot encode profile: %w", err)
	}
	if err := os.WriteFile(m.profilePath, data, 0o644); err != nil {
		return fmt.Errorf("profile: cannot write %s: %w", m.profilePath, err)
	}
	return nil
}

// Preference returns the preference for key, or def when unset.
func (m *Manager) Preference(key string, def any) any {
	if v, ok := m.profile.Preferences[key]; ok {
		return v
	}
	return def
}

// SetPreference stores a preference and persists the profile.
func (m *Manager) SetPreference(key string, value any) error {
	m.profile.Preferences[key] = value
	return m.saveProfile()
}

// AddFavorite appends a game to the favorites list. Adding a game
// that is already a favorite is a no-op.
func (m *Manager) AddFavorite(gameID string) error {
	if m.IsFavorite(gameID) {
		return nil
	}
	m.profile.Favorites = append(m.profile.Favorites, gameID)
	return m.saveProfile()
}

// RemoveFavorite removes a game from the favorites list. Removing a
// game that is not a favorite is a no-op.
func (m *Manager) RemoveFavorite(gameID string) error {
	for i, id := range m.profile.Favorites {
		if id == gameID {
			m.profile.Favorites = append(m.profile.Favorites[:i], m.profile.Favorites[i+1:]...)
			return m.saveProfile()
		}
	}
	return nil
}

// IsFavorite reports whether a game is in the favorites list.
func (m *Manager) IsFavorite(gameID string) bool {
	for _, id := range m.profile.Favorites {
		if id == gameID {
			return true
		}
	}
	return false
}

// UnlockAchievement records an achievement the first time it is seen.
// The boolean reports whether this call performed a fresh unlock;
// re-unlocking a held achievement is a no-op returning false. A fresh
// unlock bumps the statistics counter and persists both documents.
func (m *Manager) UnlockAchievement(id, gameID, description string) (bool, error) {
	if _, held := m.profile.Achievements[id]; held {
		return false, nil
	}

	m.profile.Achievements[id] = Achievement{
		UnlockedDate: m.now(),
		GameID:       gameID,
		Description:  description,
	}
	m.stats.AchievementCount++

	if err := m.saveProfile(); err != nil {
		return true, err
	}
	return true, m.saveStats()
}

// IsAchievementUnlocked reports whether an achievement is held.
func (m *Manager) IsAchievementUnlocked(id string) bool {
	_, held := m.profile.Achievements[id]
	return held
}

// Achievements returns held achievements, optionally filtered by the
// game that granted them. Pass an empty gameID for all.
func (m *Manager) Achievements(gameID string) map[string]Achievement {
	if gameID == "" {
		out := make(map[string]Achievement, len(m.profile.Achievements))
		for k, v := range m.profile.Achievements {
			out[k] = v
		}
		return out
	}

	out := map[string]Achievement{}
	for k, v := range m.profile.Achievements {
		if v.GameID == gameID {
			out[k] = v
		}
	}
	return out
}
