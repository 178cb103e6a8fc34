package cli

import (
	"github.com/spf13/cobra"

	"conflictlab.dev/conflictlab/internal/actions"
	"conflictlab.dev/conflictlab/internal/cli/helpers"
	"conflictlab.dev/conflictlab/internal/runtime"
)

// newCreateMergeConflictCmd creates the create-merge-conflict command
func newCreateMergeConflictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-merge-conflict",
		Short: "Merge the other feature branch into the current one",
		Long: `Merge the sibling feature branch into the branch you are on. If both branches
changed the same lines of hello.txt, git stops with a conflict for you to resolve.
The file is opened afterward.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CreateMergeConflictAction(ctx, actions.CreateMergeConflictOptions{})
			})
		},
	}
}
