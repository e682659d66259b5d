package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault verifies the built-in settings carry the full export surface.
func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Fonts) == 0 {
		t.Fatal("expected at least one default font")
	}
	if len(cfg.Resolutions) != 3 {
		t.Errorf("expected 3 resolutions, got %d", len(cfg.Resolutions))
	}
	if cfg.Resolutions[1].Width != 1920 || cfg.Resolutions[1].Height != 1080 {
		t.Errorf("expected 1080p defaults, got %dx%d",
			cfg.Resolutions[1].Width, cfg.Resolutions[1].Height)
	}
	if len(cfg.FPSOptions) != 3 {
		t.Errorf("expected fps options 24/30/60, got %v", cfg.FPSOptions)
	}
}

// TestLoadMissingFile verifies a nonexistent path yields the defaults.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if cfg.SampleText != Default().SampleText {
		t.Error("expected defaults when config file is missing")
	}
}

// TestLoadOverlay verifies TOML values replace defaults while untouched
// fields keep their built-in values.
func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motionlab.toml")
	data := `
fonts = ["Estedad"]
fps_options = [25, 50]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Fonts) != 1 || cfg.Fonts[0] != "Estedad" {
		t.Errorf("expected overlaid fonts, got %v", cfg.Fonts)
	}
	if len(cfg.FPSOptions) != 2 || cfg.FPSOptions[0] != 25 {
		t.Errorf("expected overlaid fps options, got %v", cfg.FPSOptions)
	}
	if len(cfg.Resolutions) != 3 {
		t.Errorf("expected default resolutions kept, got %v", cfg.Resolutions)
	}
}

// TestLoadInvalidTOML verifies malformed files surface an error.
func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("fonts = [["), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

// TestLoadEmptyList verifies an overlay cannot leave an option list empty.
func TestLoadEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(path, []byte("fonts = []"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty fonts list")
	}
}

// TestDefaultResolution verifies the startup pick prefers the second
// entry and degrades to the first when only one is configured.
func TestDefaultResolution(t *testing.T) {
	cfg := Default()
	if got := cfg.DefaultResolution().Label; got != "1080p" {
		t.Errorf("default resolution = %s, want 1080p", got)
	}

	path := filepath.Join(t.TempDir(), "single.toml")
	data := `
[[resolutions]]
label = "720p"
width = 1280
height = 720
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	single, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := single.DefaultResolution().Label; got != "720p" {
		t.Errorf("single-entry default resolution = %s, want 720p", got)
	}
}

// TestResolutionByLabel verifies lookup and the unknown-label fallback.
func TestResolutionByLabel(t *testing.T) {
	cfg := Default()

	res := cfg.ResolutionByLabel("4K")
	if res.Width != 3840 {
		t.Errorf("expected 4K width 3840, got %d", res.Width)
	}

	fallback := cfg.ResolutionByLabel("8K")
	if fallback.Label != cfg.Resolutions[0].Label {
		t.Errorf("expected fallback to first resolution, got %s", fallback.Label)
	}
}
