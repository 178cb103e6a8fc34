package actions

import (
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui/style"
)

// PrintConflictStatus displays conflict information and instructions to the user
func PrintConflictStatus(ctx *runtime.Context, unmergedFiles []string) {
	splog := ctx.Splog

	splog.Info("%s", style.ColorConflict("Merge conflict detected. Please resolve conflict in the '"+ctx.Settings.TrackedFile+"' file."))

	if len(unmergedFiles) > 0 {
		splog.Newline()
		splog.Info("Unmerged files:")
		for _, file := range unmergedFiles {
			splog.Info("  %s", style.ColorConflict(file))
		}
		splog.Newline()
	}

	splog.Info("Once the conflict is resolved, please call the %s command.", style.ColorCommand("complete-merge"))
	splog.Tip("Keep the lines you want and delete the <<<<<<<, ======= and >>>>>>> markers.")
}
