package cli

import (
	"github.com/spf13/cobra"

	"conflictlab.dev/conflictlab/internal/actions"
	"conflictlab.dev/conflictlab/internal/cli/helpers"
	"conflictlab.dev/conflictlab/internal/runtime"
)

// newCompleteMergeCmd creates the complete-merge command
func newCompleteMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete-merge",
		Short: "Stage your resolution and commit the merge",
		Long: `Stage hello.txt and run git commit. Git opens your editor with its prepared
merge message; save and close it to finish the merge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CompleteMergeAction(ctx, actions.CompleteMergeOptions{})
			})
		},
	}
}
