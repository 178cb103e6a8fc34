//go:build windows

package utils

import (
	"os/exec"
)

// OpenFile opens a file with its default application on Windows
func OpenFile(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Run()
}
