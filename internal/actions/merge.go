package actions

import (
	"errors"
	"strings"

	clerrors "conflictlab.dev/conflictlab/internal/errors"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui/style"
)

// CreateMergeConflictOptions contains options for the create-merge-conflict command
type CreateMergeConflictOptions struct{}

// CreateMergeConflictAction merges the sibling feature branch into the current
// one and explains the outcome. The tracked file is opened afterward whatever
// happened.
func CreateMergeConflictAction(ctx *runtime.Context, _ CreateMergeConflictOptions) error {
	if _, err := requireRepo(ctx); err != nil {
		return err
	}

	settings := ctx.Settings
	splog := ctx.Splog
	runner := ctx.Git()

	current, err := runner.GetCurrentBranch(ctx)
	if err != nil {
		if errors.Is(err, clerrors.ErrNoCurrentBranch) {
			splog.Info("No branch found. Please run %s first.", style.ColorCommand("initial-setup"))
			return nil
		}
		return err
	}

	if current == settings.IntegrationBranch {
		splog.Info("You're currently on branch: %s.", style.ColorBranchName(current, false))
		splog.Info("To create a merge conflict, please run %s first.", style.ColorCommand("make-changes"))
		return nil
	}

	other := settings.SiblingBranch(current)
	splog.Info("You're currently on branch: %s.", style.ColorBranchName(current, false))
	splog.Info("Merging %s into %s...", style.ColorBranchName(other, false), style.ColorBranchName(current, false))

	result, err := runner.Merge(ctx, other)
	switch {
	case err != nil:
		splog.Error("Merge of %s into %s failed.", other, current)
		if result != nil {
			if detail := strings.TrimSpace(result.Stderr); detail != "" {
				splog.Info("%s", detail)
			}
		}
	case result.Conflicted:
		PrintConflictStatus(ctx, result.UnmergedPaths)
	default:
		splog.Info("Merge attempt complete.")
	}

	openTrackedFile(ctx)
	return nil
}
