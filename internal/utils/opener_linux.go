//go:build linux

package utils

import (
	"os/exec"
)

// OpenFile opens a file with its default application on Linux
func OpenFile(path string) error {
	return exec.Command("xdg-open", path).Run()
}
