package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppDirName     = "icongen"
	ConfigFileName = "icongen.json"
	ICOFileName    = "icon.ico"
	SVGFileName    = "icon.svg"
	DirPerm        = 0755
	FilePerm       = 0644
)

// IconFile returns the conventional PNG filename for a pixel size,
// e.g. IconFile(48) = "icon48.png".
func IconFile(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ConfigDir returns the platform-specific config directory for icongen:
//   - Windows: %APPDATA%\icongen
//   - Unix:    ~/.config/icongen
//
// Falls back to os.TempDir()/icongen if neither is available.
func ConfigDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
