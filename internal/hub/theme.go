// Package hub holds the presentation configuration for the hub UI:
// named color themes and menu layouts. Presets live in an embedded
// YAML document and can be overridden by ~/.gameverse/themes.yaml or
// an explicit path. The loaded Config is a plain value constructed
// once at startup and passed into the UI; nothing here is a process
// singleton.
package hub

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme is one named color scheme for the hub UI.
type Theme struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Success    string `yaml:"success"`
	Error      string `yaml:"error"`
	Glow       bool   `yaml:"glow"`
}

// Layout controls how the menu arranges game entries.
type Layout struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	ItemsPerRow      int    `yaml:"items_per_row"`
	ShowDescriptions bool   `yaml:"show_descriptions"`
}

// Config bundles all available themes and layouts.
type Config struct {
	Themes  []Theme  `yaml:"themes"`
	Layouts []Layout `yaml:"layouts"`
}

// Load reads the presentation config. Search order: customPath,
// ~/.gameverse/themes.yaml, the embedded defaults.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("hub: cannot read config %s: %w", customPath, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("hub: cannot parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			var cfg Config
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(defaultThemesYAML, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the user override location, or empty when
// the home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gameverse", "themes.yaml")
}

// Theme returns the theme with the given id, falling back to the
// first configured theme when the id is unknown.
func (c Config) Theme(id string) Theme {
	for _, t := range c.Themes {
		if t.ID == id {
			return t
		}
	}
	if len(c.Themes) > 0 {
		return c.Themes[0]
	}
	return DefaultConfig().Themes[0]
}

// Layout returns the layout with the given id, falling back to the
// first configured layout when the id is unknown.
func (c Config) Layout(id string) Layout {
	for _, l := range c.Layouts {
		if l.ID == id {
			return l
		}
	}
	if len(c.Layouts) > 0 {
		return c.Layouts[0]
	}
	return DefaultConfig().Layouts[0]
}

// Styles is a theme rendered into ready-to-use lipgloss styles.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Favorite lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

// Styles builds the lipgloss styles for a theme.
func (t Theme) Styles() Styles {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true)
	if t.Glow {
		title = title.Underline(true)
	}
	return Styles{
		Title:    title,
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Favorite: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
	}
}
