package cli

import (
	"github.com/spf13/cobra"

	"conflictlab.dev/conflictlab/internal/actions"
	"conflictlab.dev/conflictlab/internal/cli/helpers"
	"conflictlab.dev/conflictlab/internal/runtime"
)

// newSetupCmd creates the initial-setup command
func newSetupCmd() *cobra.Command {
	var opts actions.SetupOptions

	cmd := &cobra.Command{
		Use:   "initial-setup",
		Short: "Create a practice repository with an empty hello.txt on main",
		Long: `Create a git repository in a new temporary directory, add an empty hello.txt
and commit it on main. The repository path is recorded in repo_path.txt so the
following steps can find it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SetupAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.TempDir, "temp-dir", "", "parent directory for the practice repo (default: system temp dir)")

	return cmd
}
