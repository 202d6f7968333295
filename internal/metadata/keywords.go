package metadata

import "strings"

// categoryKeywords is the classification table for DetectCategory.
// Order matters: this is a first-match-wins classifier, not a scored
// one. A file mentioning both "jump" and "bullet" is a platformer
// because platformer keywords are tested first. Keep the lists and
// their order stable; changing either silently reclassifies games.
var categoryKeywords = []struct {
	Category Category
	Words    []string
}{
	{CategoryPlatformer, []string{"platform", "jump", "gravity"}},
	{CategoryShooter, []string{"shoot", "bullet", "enemy", "alien"}},
	{CategoryPuzzle, []string{"puzzle", "solve", "brain", "logic"}},
	{CategoryRacing, []string{"race", "car", "speed", "lap"}},
	{CategoryArcade, []string{"break", "brick", "ball", "paddle"}},
	{CategoryClicker, []string{"click", "increment", "upgrade"}},
	{CategoryQuiz, []string{"quiz", "question", "answer"}},
	{CategoryBoard, []string{"board", "chess", "checkers"}},
	{CategoryTyping, []string{"type", "typing", "keyboard"}},
	{CategorySimulation, []string{"build", "city", "simulation"}},
}

// multiplayerKeywords flag a game as multiplayer. This is text
// detection, not capability detection.
var multiplayerKeywords = []string{
	"multiplayer", "player2", "network", "socket", "client", "server",
}

// tagKeywords generate descriptive tags along three independent axes:
// visual style, gameplay pace, technical trait.
var tagKeywords = []struct {
	Tag   string
	Words []string
}{
	// Visual style
	{"retro", []string{"retro", "pixel"}},
	{"neon", []string{"neon", "glow"}},
	// Gameplay pace
	{"action", []string{"action", "fast"}},
	{"casual", []string{"casual", "relax"}},
	{"challenging", []string{"hard", "difficult"}},
	// Technical traits
	{"tui", []string{"bubbletea"}},
	{"concurrent", []string{"goroutine"}},
}

const maxTags = 5

func containsAny(haystack string, words []string) bool {
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}
