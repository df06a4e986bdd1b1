// Package export renders the configured icon sizes and writes them to disk:
// one PNG per size, plus an optional multi-resolution ICO bundle and an SVG
// master. Writes are sequential and atomic; the first failure aborts the run
// with no cleanup of files already written.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/icongen/internal/config"
	"github.com/Mavwarf/icongen/internal/icon"
	"github.com/Mavwarf/icongen/internal/paths"
)

// WritePNG encodes img and writes it to path atomically.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteICO bundles the rendered images into one multi-resolution ICO file.
func WriteICO(path string, imgs []image.Image) error {
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, imgs); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Generate ensures the output directory exists, then renders and writes
// icon<size>.png for each configured size in order, followed by the optional
// ICO and SVG outputs. It returns the paths written so far, even on error,
// so callers can report partial progress.
func Generate(cfg config.Config) ([]string, error) {
	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", cfg.Dir, err)
	}

	var written []string
	var imgs []image.Image
	for _, size := range cfg.Sizes {
		img := icon.Draw(size, pal)
		p := filepath.Join(cfg.Dir, paths.IconFile(size))
		if err := WritePNG(p, img); err != nil {
			return written, err
		}
		written = append(written, p)
		imgs = append(imgs, img)
	}

	if cfg.ICO {
		p := filepath.Join(cfg.Dir, paths.ICOFileName)
		if err := WriteICO(p, imgs); err != nil {
			return written, err
		}
		written = append(written, p)
	}

	if cfg.SVG {
		p := filepath.Join(cfg.Dir, paths.SVGFileName)
		if err := WriteSVG(p, SVGSize, pal); err != nil {
			return written, err
		}
		written = append(written, p)
	}

	return written, nil
}
