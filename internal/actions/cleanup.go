package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"conflictlab.dev/conflictlab/internal/runtime"
)

// CleanupOptions contains options for the cleanup command
type CleanupOptions struct{}

// CleanupAction deletes the practice repository and both state files. The
// state files are removed when the session is saved.
func CleanupAction(ctx *runtime.Context, _ CleanupOptions) error {
	splog := ctx.Splog
	session := ctx.Session
	removed := false

	if repoPath := session.RepoPath; repoPath != "" && pathExists(repoPath) {
		if !isPracticeDir(ctx, repoPath) {
			splog.Warn("Refusing to remove %s: it was not created by initial-setup.", repoPath)
		} else {
			splog.Info("Removing '%s' and its repository at %s...", ctx.Settings.TrackedFile, repoPath)
			if err := os.RemoveAll(repoPath); err != nil {
				return fmt.Errorf("failed to remove %s: %w", repoPath, err)
			}
			removed = true
		}
	}

	for _, path := range []string{session.MarkerPath(), session.UserLogPath()} {
		if pathExists(path) {
			splog.Info("Removing %s", filepath.Base(path))
			removed = true
		}
	}

	session.Clear()

	if !removed {
		splog.Info("Nothing to clean up.")
	}
	return nil
}

// isPracticeDir guards against deleting a directory the marker was edited to point at
func isPracticeDir(ctx *runtime.Context, path string) bool {
	return strings.HasPrefix(filepath.Base(path), ctx.Settings.TempDirPrefix)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
