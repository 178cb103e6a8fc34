package cli

import (
	"github.com/spf13/cobra"

	"conflictlab.dev/conflictlab/internal/actions"
	"conflictlab.dev/conflictlab/internal/cli/helpers"
	"conflictlab.dev/conflictlab/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var opts actions.DoctorOptions
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check git and the practice repo, and suggest the next step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DoctorAction(ctx, opts)
			})
		},
	}
	cmd.Flags().BoolVar(&opts.WriteConfig, "write-config", false, "Write the default settings file if none exists")
	return cmd
}
