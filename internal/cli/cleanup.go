package cli

import (
	"github.com/spf13/cobra"

	"conflictlab.dev/conflictlab/internal/actions"
	"conflictlab.dev/conflictlab/internal/cli/helpers"
	"conflictlab.dev/conflictlab/internal/runtime"
)

// newCleanupCmd creates the cleanup command
func newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove the practice repository and its state files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CleanupAction(ctx, actions.CleanupOptions{})
			})
		},
	}
}
