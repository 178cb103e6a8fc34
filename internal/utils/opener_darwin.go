//go:build darwin

package utils

import (
	"os/exec"
)

// OpenFile opens a file with its default application on macOS
func OpenFile(path string) error {
	return exec.Command("open", path).Run()
}
