package actions

import (
	"os"
	"strings"

	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui/style"
)

// CompleteMergeOptions contains options for the complete-merge command
type CompleteMergeOptions struct{}

// CompleteMergeAction stages the tracked file and commits without a message so
// git's own merge message and editor flow finish the merge
func CompleteMergeAction(ctx *runtime.Context, _ CompleteMergeOptions) error {
	repoPath, err := requireRepo(ctx)
	if err != nil {
		return err
	}

	settings := ctx.Settings
	splog := ctx.Splog
	runner := ctx.Git()

	if data, err := os.ReadFile(trackedFilePath(ctx)); err == nil && hasConflictMarkers(string(data)) {
		splog.Warn("'%s' still contains conflict markers; they will be committed as-is.", settings.TrackedFile)
	}

	if err := runner.Add(ctx, settings.TrackedFile); err != nil {
		return err
	}
	if !runner.IsMergeInProgress(ctx) {
		staged, err := runner.HasStagedChanges(ctx)
		if err != nil {
			return err
		}
		if !staged {
			splog.Info("No merge in progress and nothing to commit.")
			splog.Tip("Run %s first.", style.ColorCommand("create-merge-conflict"))
			return nil
		}
	}
	if err := runner.Commit(ctx, git.CommitOptions{}); err != nil {
		return err
	}

	splog.Info("%s", style.ColorSuccess("Merge completed successfully."))
	if repo, err := git.OpenRepository(repoPath); err == nil {
		if head, err := repo.HeadCommit(); err == nil {
			kind := "commit"
			if head.IsMerge() {
				kind = "merge commit"
			}
			splog.Info("HEAD is now %s (%s): %s", head.ShortHash(), kind, firstLine(head.Message))
		}
	}
	splog.Info("You can clean up the temp files by using the %s command. Or restart the practice with %s.",
		style.ColorCommand("cleanup"), style.ColorCommand("initial-setup"))
	return nil
}

func hasConflictMarkers(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "<<<<<<< ") || strings.HasPrefix(line, ">>>>>>> ") {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
