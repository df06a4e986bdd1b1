package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Mavwarf/icongen/internal/icon"
)

func TestUnmarshalEmptyObjectKeepsDefaults(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Dir != DefaultDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, DefaultDir)
	}
	if !reflect.DeepEqual(cfg.Sizes, DefaultSizes) {
		t.Errorf("Sizes = %v, want %v", cfg.Sizes, DefaultSizes)
	}
	if cfg.Background != "#10a37f" {
		t.Errorf("Background = %q, want %q", cfg.Background, "#10a37f")
	}
	if cfg.Arrow != "#ffffff" {
		t.Errorf("Arrow = %q, want %q", cfg.Arrow, "#ffffff")
	}
	if cfg.ICO || cfg.SVG {
		t.Errorf("ICO/SVG default on: %v %v", cfg.ICO, cfg.SVG)
	}
}

func TestUnmarshalOverrides(t *testing.T) {
	data := []byte(`{
		"dir": "assets",
		"sizes": [64, 256],
		"background": "#2563eb",
		"ico": true
	}`)
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Dir != "assets" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "assets")
	}
	if !reflect.DeepEqual(cfg.Sizes, []int{64, 256}) {
		t.Errorf("Sizes = %v, want [64 256]", cfg.Sizes)
	}
	if cfg.Background != "#2563eb" {
		t.Errorf("Background = %q, want %q", cfg.Background, "#2563eb")
	}
	// Untouched fields keep defaults.
	if cfg.Arrow != "#ffffff" {
		t.Errorf("Arrow = %q, want %q", cfg.Arrow, "#ffffff")
	}
	if !cfg.ICO || cfg.SVG {
		t.Errorf("ICO = %v, SVG = %v", cfg.ICO, cfg.SVG)
	}
}

func TestPalette(t *testing.T) {
	pal, err := Default().Palette()
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if pal.Background != icon.DefaultBackground {
		t.Errorf("Background = %v, want %v", pal.Background, icon.DefaultBackground)
	}
	if pal.Arrow != icon.DefaultArrow {
		t.Errorf("Arrow = %v, want %v", pal.Arrow, icon.DefaultArrow)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"no sizes", func(c *Config) { c.Sizes = nil }, true},
		{"zero size", func(c *Config) { c.Sizes = []int{16, 0} }, true},
		{"negative size", func(c *Config) { c.Sizes = []int{-48} }, true},
		{"bad background", func(c *Config) { c.Background = "teal" }, true},
		{"bad arrow", func(c *Config) { c.Arrow = "#fff" }, true},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: %v", tt.name, err)
		}
	}
}

func TestLoadExplicitPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icongen.json")
	if err := os.WriteFile(p, []byte(`{"dir": "out", "svg": true}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "out" || !cfg.SVG {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icongen.json")
	if err := os.WriteFile(p, []byte(`{"sizes": [0]}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(p); err == nil {
		t.Error("expected error for invalid config")
	}
}
