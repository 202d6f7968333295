package metadata

import (
	"reflect"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		src  string
		id   string
		want string
	}{
		{
			name: "title comment with colon",
			src:  "// Title: Space Blaster\npackage main\n",
			id:   "space_blaster",
			want: "Space Blaster",
		},
		{
			name: "name comment with dash",
			src:  "// Game name - Star Hopper\npackage main\n",
			id:   "star_hopper",
			want: "Star Hopper",
		},
		{
			name: "hash marker",
			src:  "# title: Shell Quest\n",
			id:   "shell_quest",
			want: "Shell Quest",
		},
		{
			name: "doc block first line",
			src:  "// Neon Drift\n//\n// Drive fast.\npackage main\n",
			id:   "neon_drift",
			want: "Neon Drift",
		},
		{
			name: "fallback to id",
			src:  "package main\n",
			id:   "pixel_runner",
			want: "Pixel Runner",
		},
		{
			name: "kebab case id",
			src:  "",
			id:   "quick-quiz",
			want: "Quick Quiz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.src, tt.id); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "doc block joined",
			src:  "// Neon Drift\n// Drive fast through\n// the neon city.\npackage main\n",
			want: "Drive fast through the neon city.",
		},
		{
			name: "description comment",
			src:  "package main\n// description: A small demo\n",
			want: "A small demo",
		},
		{
			name: "default",
			src:  "package main\n",
			want: DefaultDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDescription(tt.src); got != tt.want {
				t.Errorf("ExtractDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Category
	}{
		{"platformer", "the player can jump over gaps", CategoryPlatformer},
		{"shooter", "press space to shoot the alien", CategoryShooter},
		{"puzzle", "solve the grid", CategoryPuzzle},
		{"racing", "fastest lap wins", CategoryRacing},
		{"quiz", "pick the right answer to the question", CategoryQuiz},
		{"fallback", "nothing recognizable here", CategoryArcade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCategory(tt.src); got != tt.want {
				t.Errorf("DetectCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectCategoryPriorityOrder(t *testing.T) {
	// Both platformer and shooter keywords present: the earlier set in
	// the fixed priority order must win, every time.
	src := "jump over the bullet"
	for i := 0; i < 10; i++ {
		if got := DetectCategory(src); got != CategoryPlatformer {
			t.Fatalf("DetectCategory() = %q, want %q", got, CategoryPlatformer)
		}
	}
}

func TestDetectMultiplayer(t *testing.T) {
	if !DetectMultiplayer("connects to the server over a socket") {
		t.Error("DetectMultiplayer() = false for networked source")
	}
	if DetectMultiplayer("a quiet single player experience") {
		t.Error("DetectMultiplayer() = true for plain source")
	}
	// Textual detection is allowed to false-positive on identifiers.
	if !DetectMultiplayer("var player2Score int") {
		t.Error("DetectMultiplayer() = false for player2 identifier")
	}
}

func TestExtractRequirements(t *testing.T) {
	src := `package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)
`
	got := ExtractRequirements(src)
	want := []string{
		DefaultRequirement,
		"github.com/charmbracelet/lipgloss",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractRequirements() = %v, want %v", got, want)
	}
}

func TestExtractRequirementsNoImports(t *testing.T) {
	got := ExtractRequirements("package main\n\nfunc main() {}\n")
	if len(got) != 1 || got[0] != DefaultRequirement {
		t.Errorf("ExtractRequirements() = %v, want just the default", got)
	}
}

func TestExtractRequirementsSingleLineImport(t *testing.T) {
	src := "package main\n\nimport \"github.com/spf13/cobra\"\n"
	got := ExtractRequirements(src)
	want := []string{DefaultRequirement, "github.com/spf13/cobra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractRequirements() = %v, want %v", got, want)
	}
}

func TestGenerateTagsCap(t *testing.T) {
	// Source hits more tag sets than the cap allows.
	src := "retro pixel neon glow action fast casual relax hard bubbletea goroutine"
	got := GenerateTags(src)
	if len(got) > 5 {
		t.Errorf("GenerateTags() returned %d tags, cap is 5", len(got))
	}
}

func TestExtractDefaults(t *testing.T) {
	g := Extract("my_game", "my_game.go", "package main\n")

	if g.Title != "My Game" {
		t.Errorf("Title = %q, want %q", g.Title, "My Game")
	}
	if g.Description != DefaultDescription {
		t.Errorf("Description = %q, want default", g.Description)
	}
	if g.Category != CategoryArcade {
		t.Errorf("Category = %q, want arcade", g.Category)
	}
	if g.Difficulty != DefaultDifficulty {
		t.Errorf("Difficulty = %q, want %q", g.Difficulty, DefaultDifficulty)
	}
	if g.Version != DefaultVersion {
		t.Errorf("Version = %q, want %q", g.Version, DefaultVersion)
	}
	if g.Author != DefaultAuthor {
		t.Errorf("Author = %q, want %q", g.Author, DefaultAuthor)
	}
	if g.Multiplayer {
		t.Error("Multiplayer = true for empty source")
	}
}
