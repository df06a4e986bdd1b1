// Package config loads the optional icongen.json settings file. A missing
// config is not an error: defaults reproduce the stock browser-extension
// asset set exactly.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mavwarf/icongen/internal/icon"
	"github.com/Mavwarf/icongen/internal/paths"
)

// DefaultDir is the output directory used when none is configured. It is
// relative to the working directory, matching the extension source layout.
const DefaultDir = "src/icons"

// DefaultSizes are the pixel sizes required by Chrome extension manifests.
var DefaultSizes = []int{16, 32, 48, 128}

// Config holds generation settings. Zero-value fields fall back to the
// stock behavior: four PNGs into src/icons with the teal/white palette.
type Config struct {
	Dir        string `json:"dir,omitempty"`
	Sizes      []int  `json:"sizes,omitempty"`
	Background string `json:"background,omitempty"` // "#rrggbb"
	Arrow      string `json:"arrow,omitempty"`      // "#rrggbb"
	ICO        bool   `json:"ico,omitempty"`        // also bundle icon.ico
	SVG        bool   `json:"svg,omitempty"`        // also emit icon.svg
}

// Default returns the configuration of a bare run with no config file.
func Default() Config {
	return Config{
		Dir:        DefaultDir,
		Sizes:      append([]int(nil), DefaultSizes...),
		Background: icon.Hex(icon.DefaultBackground),
		Arrow:      icon.Hex(icon.DefaultArrow),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Palette resolves the configured colors.
func (c Config) Palette() (icon.Palette, error) {
	bg, err := icon.ParseHex(c.Background)
	if err != nil {
		return icon.Palette{}, fmt.Errorf("background: %w", err)
	}
	ar, err := icon.ParseHex(c.Arrow)
	if err != nil {
		return icon.Palette{}, fmt.Errorf("arrow: %w", err)
	}
	return icon.Palette{Background: bg, Arrow: ar}, nil
}

// Validate rejects configs that cannot render: empty or non-positive sizes
// and malformed colors.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("invalid size %d (must be positive)", s)
		}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. icongen.json next to the running binary
//  3. the user config directory (see paths.ConfigDir)
//
// If no file exists, Default() is returned with no error.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	p := filepath.Join(paths.ConfigDir(), paths.ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return readConfig(p)
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
