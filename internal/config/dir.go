package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the conflictlab configuration directory.
//
// Resolution:
//   - $CONFLICTLAB_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/conflictlab if set
//   - %AppData%/conflictlab on Windows
//   - ~/.config/conflictlab on macOS and Linux
func Dir() string {
	if dir := os.Getenv("CONFLICTLAB_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "conflictlab")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "conflictlab")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "conflictlab")
}
