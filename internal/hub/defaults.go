package hub

import (
	_ "embed"
)

//go:embed defaults/themes.yaml
var defaultThemesYAML []byte

// DefaultConfig returns the hardcoded presets, used only if the
// embedded YAML fails to decode.
func DefaultConfig() Config {
	return Config{
		Themes: []Theme{
			{
				ID:         "retro",
				Name:       "Retro Gaming",
				Background: "#141428",
				Primary:    "#4080ff",
				Secondary:  "#ff4080",
				Accent:     "#ffff40",
				Text:       "#ffffff",
				Muted:      "#c8c8c8",
				Success:    "#40ff40",
				Error:      "#ff4040",
				Glow:       true,
			},
			{
				ID:         "dark",
				Name:       "Dark Mode",
				Background: "#191919",
				Primary:    "#c8c8c8",
				Secondary:  "#969696",
				Accent:     "#6496ff",
				Text:       "#ffffff",
				Muted:      "#b4b4b4",
				Success:    "#64c864",
				Error:      "#ff6464",
			},
		},
		Layouts: []Layout{
			{ID: "grid", Name: "Grid View", ItemsPerRow: 3, ShowDescriptions: true},
			{ID: "list", Name: "List View", ItemsPerRow: 1, ShowDescriptions: true},
		},
	}
}
