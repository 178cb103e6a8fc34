package actions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	clerrors "conflictlab.dev/conflictlab/internal/errors"
	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/internal/runtime"
)

// requireRepo returns the recorded practice repository, or ErrRepoNotFound when
// no marker exists or the marked directory is no longer a repository
func requireRepo(ctx *runtime.Context) (string, error) {
	if !ctx.Session.HasRepo() {
		return "", clerrors.ErrRepoNotFound
	}
	repoPath := ctx.Session.RepoPath
	if !git.IsRepoRoot(repoPath) {
		return "", fmt.Errorf("%w: %s is not a git repository", clerrors.ErrRepoNotFound, repoPath)
	}
	return repoPath, nil
}

// trackedFilePath returns the absolute path of the practice file
func trackedFilePath(ctx *runtime.Context) string {
	return filepath.Join(ctx.Session.RepoPath, ctx.Settings.TrackedFile)
}

// statTrackedFile returns the practice file's path, or ErrTrackedFileNotFound
func statTrackedFile(ctx *runtime.Context) (string, error) {
	path := trackedFilePath(ctx)
	if _, err := os.Stat(path); err != nil {
		return path, fmt.Errorf("%w: %s", clerrors.ErrTrackedFileNotFound, path)
	}
	return path, nil
}

// openTrackedFile hands the practice file to the opener. Failures are printed,
// never returned.
func openTrackedFile(ctx *runtime.Context) {
	path, err := statTrackedFile(ctx)
	if errors.Is(err, clerrors.ErrTrackedFileNotFound) {
		ctx.Splog.Warn("'%s' file not found.", ctx.Settings.TrackedFile)
		return
	}

	ctx.Splog.Info("Opening '%s'...", path)
	err = ctx.Opener.OpenFile(path)
	switch {
	case err == nil:
	case errors.Is(err, clerrors.ErrUnsupportedPlatform):
		ctx.Splog.Warn("Unsupported OS for auto-open.")
	default:
		ctx.Splog.Warn("Could not open '%s': %v", path, err)
	}
}
