package actions

import (
	"fmt"
	"os"

	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui/style"
	"conflictlab.dev/conflictlab/internal/utils"
)

// SetupOptions contains options for the initial-setup command
type SetupOptions struct {
	// TempDir overrides the parent directory of the practice repo (default: os.TempDir())
	TempDir string
}

// SetupAction creates a fresh practice repository and commits an empty tracked
// file on the integration branch
func SetupAction(ctx *runtime.Context, opts SetupOptions) error {
	settings := ctx.Settings
	splog := ctx.Splog

	if previous := ctx.Session.RepoPath; previous != "" && git.IsRepoRoot(previous) {
		splog.Warn("Replacing the practice repo at %s. Run %s first to delete it.", previous, style.ColorCommand("cleanup"))
	}

	repoPath, err := os.MkdirTemp(opts.TempDir, settings.TempDirPrefix)
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	splog.Info("%s", repoPath)

	// Record the path right away so cleanup can find a half-built repo
	ctx.Session.RepoPath = repoPath
	runner := ctx.Git()

	if err := runner.Init(ctx); err != nil {
		return err
	}
	if err := runner.CreateAndCheckoutBranch(ctx, settings.IntegrationBranch, ""); err != nil {
		return err
	}
	splog.Info("Created new Git repo at %s", style.ColorPath(repoPath))

	defaultEmail := utils.EmailFromName(settings.DefaultUser, settings.EmailDomain)
	wrote, err := runner.EnsureIdentity(ctx, settings.DefaultUser, defaultEmail)
	if err != nil {
		return err
	}
	if wrote {
		splog.Debug("No git identity configured, using %s <%s> in the practice repo", settings.DefaultUser, defaultEmail)
	}

	filePath := trackedFilePath(ctx)
	if err := os.WriteFile(filePath, nil, 0600); err != nil {
		return fmt.Errorf("failed to create %s: %w", settings.TrackedFile, err)
	}
	if err := runner.Add(ctx, settings.TrackedFile); err != nil {
		return err
	}
	if err := runner.Commit(ctx, git.CommitOptions{
		Message: fmt.Sprintf("Initial commit on %s", settings.IntegrationBranch),
	}); err != nil {
		return err
	}

	splog.Info("Base file '%s' has been created and committed on '%s'.", settings.TrackedFile, settings.IntegrationBranch)
	splog.Info("Initial setup complete. An empty file called '%s' is created under the path %s.", settings.TrackedFile, style.ColorPath(filePath))
	splog.Tip("Next, run %s to edit the file on a feature branch.", style.ColorCommand("make-changes"))
	return nil
}
