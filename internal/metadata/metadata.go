// Package metadata extracts descriptive game metadata from raw source
// text. Extraction is purely textual: fixed keyword tables, comment
// scanning, and whitespace import parsing. Nothing is compiled or
// executed, so false positives are expected and acceptable (a variable
// named player2 marks a single-player game as multiplayer).
package metadata

import (
	"strings"
	"time"
)

// Category classifies a game by its dominant gameplay keywords.
type Category string

// Known categories, in no particular order. Classification priority
// lives in keywords.go.
const (
	CategoryPlatformer Category = "platformer"
	CategoryShooter    Category = "shooter"
	CategoryPuzzle     Category = "puzzle"
	CategoryRacing     Category = "racing"
	CategoryArcade     Category = "arcade"
	CategoryClicker    Category = "clicker"
	CategoryQuiz       Category = "quiz"
	CategoryBoard      Category = "board"
	CategoryTyping     Category = "typing"
	CategorySimulation Category = "simulation"
)

// GameMetadata describes one discovered game. The extractor fills the
// descriptive fields on every scan; the user-owned fields at the bottom
// are only ever written by the hub and survive rediscovery untouched.
type GameMetadata struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	File              string   `json:"file"`
	Description       string   `json:"description"`
	Category          Category `json:"category"`
	Difficulty        string   `json:"difficulty"`
	EstimatedPlaytime string   `json:"estimated_playtime"`
	Multiplayer       bool     `json:"multiplayer"`
	Requirements      []string `json:"requirements"`
	Version           string   `json:"version"`
	Author            string   `json:"author"`
	Tags              []string `json:"tags"`
	Thumbnail         string   `json:"thumbnail"`
	Leaderboard       bool     `json:"leaderboard"`

	// User-owned fields. Preserved verbatim on merge, never taken from
	// a fresh discovery once an entry exists.
	Favorite       bool      `json:"favorite,omitempty"`
	LastPlayed     time.Time `json:"last_played,omitzero"`
	Playtime       int       `json:"playtime"`
	HighScore      int       `json:"high_score"`
	CompletionRate float64   `json:"completion_rate"`
}

// Defaults used when a heuristic finds nothing.
const (
	DefaultDescription = "A terminal game"
	DefaultDifficulty  = "medium"
	DefaultPlaytime    = "10-20 min"
	DefaultVersion     = "1.0.0"
	DefaultAuthor      = "Unknown"

	// DefaultRequirement is always present: every game in the hub
	// renders through Bubble Tea.
	DefaultRequirement = "github.com/charmbracelet/bubbletea"
)

// TitleFromID converts a snake_case or kebab-case identifier into a
// title-cased display name ("pixel_runner" -> "Pixel Runner").
func TitleFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
