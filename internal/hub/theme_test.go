package hub

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cfg.Themes) == 0 {
		t.Fatal("no themes loaded")
	}
	if len(cfg.Layouts) == 0 {
		t.Fatal("no layouts loaded")
	}

	retro := cfg.Theme("retro")
	if retro.ID != "retro" {
		t.Errorf("Theme(retro).ID = %q", retro.ID)
	}
	if retro.Primary == "" {
		t.Error("retro theme has no primary color")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	custom := `themes:
  - id: mono
    name: Mono
    primary: "#ffffff"
    text: "#cccccc"
layouts:
  - id: plain
    name: Plain
    items_per_row: 1
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Themes) != 1 || cfg.Themes[0].ID != "mono" {
		t.Errorf("custom themes = %+v, want just mono", cfg.Themes)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() succeeded for a missing explicit path, want an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte(":\n  - {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() succeeded on invalid YAML, want an error")
	}
}

func TestThemeFallback(t *testing.T) {
	cfg := DefaultConfig()

	unknown := cfg.Theme("no_such_theme")
	if unknown.ID != cfg.Themes[0].ID {
		t.Errorf("unknown theme = %q, want fallback to %q", unknown.ID, cfg.Themes[0].ID)
	}

	layout := cfg.Layout("no_such_layout")
	if layout.ID != cfg.Layouts[0].ID {
		t.Errorf("unknown layout = %q, want fallback to %q", layout.ID, cfg.Layouts[0].ID)
	}
}

func TestStylesGlow(t *testing.T) {
	glowing := Theme{Primary: "#ff00ff", Glow: true}.Styles()
	if !glowing.Title.GetUnderline() {
		t.Error("glow theme title is not underlined")
	}

	flat := Theme{Primary: "#ff00ff"}.Styles()
	if flat.Title.GetUnderline() {
		t.Error("flat theme title is underlined")
	}
}
