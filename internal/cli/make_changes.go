package cli

import (
	"github.com/spf13/cobra"

	"conflictlab.dev/conflictlab/internal/actions"
	"conflictlab.dev/conflictlab/internal/cli/helpers"
	"conflictlab.dev/conflictlab/internal/runtime"
)

// newMakeChangesCmd creates the make-changes command
func newMakeChangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   actions.MakeChangesCommand,
		Short: "Edit hello.txt on a new feature branch and commit it",
		Long: `Ask who is making the change, which feature branch to use ('a' or 'b') and
three lines of text. A new branch is cut from main, hello.txt is overwritten
with the three lines and the edit is committed under your name.

Run it twice, once for each branch, to set up a conflict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.MakeChangesAction(ctx, actions.MakeChangesOptions{})
			})
		},
	}
}
