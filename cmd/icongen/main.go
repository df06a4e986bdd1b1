package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/Mavwarf/icongen/internal/config"
	"github.com/Mavwarf/icongen/internal/export"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	configPath := ""
	dir := ""
	ico := false
	svg := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: --config requires a file path\n")
				os.Exit(1)
			}
			configPath = args[i+1]
			i++
		case "--dir", "-d":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: --dir requires a directory path\n")
				os.Exit(1)
			}
			dir = args[i+1]
			i++
		case "--ico":
			ico = true
		case "--svg":
			svg = true
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", args[i])
			fmt.Fprintf(os.Stderr, "Run 'icongen help' for usage.\n")
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = applyFlags(cfg, dir, ico, svg)

	written, err := export.Generate(cfg)
	for _, p := range written {
		fmt.Printf("Generated %s\n", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overlays CLI flags onto the loaded config. Flags only ever
// enable or override; absent flags leave config values alone.
func applyFlags(cfg config.Config, dir string, ico, svg bool) config.Config {
	if dir != "" {
		cfg.Dir = dir
	}
	if ico {
		cfg.ICO = true
	}
	if svg {
		cfg.SVG = true
	}
	return cfg
}

func printVersion() {
	fmt.Printf("icongen %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	sizes := make([]string, 0, len(config.DefaultSizes))
	for _, s := range config.DefaultSizes {
		sizes = append(sizes, fmt.Sprintf("%d", s))
	}
	fmt.Printf("icongen %s - Generate the extension icon set\n", version)
	fmt.Printf(`
Usage:
  icongen [options]

Options:
  --dir, -d <path>       Output directory (default: %s)
  --config, -c <path>    Path to %s
  --ico                  Also bundle the sizes into icon.ico
  --svg                  Also emit a scalable icon.svg master

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>              (explicit)
  2. icongen.json next to binary  (portable)
  3. ~/.config/icongen/icongen.json (user default)

With no options, writes icon{%s}.png into %s.
`, config.DefaultDir, "icongen.json", strings.Join(sizes, ","), config.DefaultDir)
}
