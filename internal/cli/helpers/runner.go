// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	clerrors "conflictlab.dev/conflictlab/internal/errors"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui/style"
)

// Run provides the runtime context to a command's execution function. Errors
// from fn are printed and swallowed: a failed step never fails the process.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	if err := fn(ctx); err != nil {
		Report(ctx, err)
	}
	return nil
}

// Report prints an action error with a hint for the errors users can act on
func Report(ctx *runtime.Context, err error) {
	splog := ctx.Splog

	var gitErr *clerrors.GitCommandError
	switch {
	case errors.Is(err, clerrors.ErrRepoNotFound):
		splog.Error("Repo path not found.")
		splog.Tip("Run %s to create a practice repo.", style.ColorCommand("initial-setup"))
	case errors.As(err, &gitErr):
		splog.Error("git %s failed.", strings.Join(gitErr.Args, " "))
		if detail := strings.TrimSpace(gitErr.Stderr); detail != "" {
			splog.Info("%s", detail)
		}
	default:
		splog.Error("%v", err)
	}
	splog.Debug("error detail: %+v", err)
}
