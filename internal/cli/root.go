package cli

import (
	"github.com/spf13/cobra"

	"conflictlab.dev/conflictlab/internal/config"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	var stateDir string

	rootCmd := &cobra.Command{
		Use:   "conflictlab",
		Short: "Practice creating and resolving git merge conflicts",
		Long: `Conflictlab walks you through a git merge conflict in a throwaway repository.

Run the steps in order:
  initial-setup          create a practice repo with an empty hello.txt
  make-changes           edit hello.txt on feature-a, then again on feature-b
  create-merge-conflict  merge the other feature branch into the current one
  complete-merge         commit your resolution
  cleanup                remove the practice repo and its state files

Run doctor at any point to see where you are.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			if stateDir != "" {
				settings.StateDir = stateDir
			}

			splog, err := tui.NewSplogWithWriterAndConfig(cmd.OutOrStdout(), settings.LogFile)
			if err != nil {
				return err
			}

			ctx, err := runtime.NewContext(cmd.Context(), settings, splog)
			if err != nil {
				_ = splog.Close()
				return err
			}
			if !tui.IsTTY() {
				ctx.Prompter = tui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			cmd.SetContext(runtime.WithContext(cmd.Context(), ctx))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			return ctx.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "directory holding repo_path.txt and user_log.txt (default: current directory)")

	rootCmd.AddGroup(&cobra.Group{ID: "practice", Title: "Practice Commands:"})
	addGroupedCommand(rootCmd, newSetupCmd(), "practice")
	addGroupedCommand(rootCmd, newMakeChangesCmd(), "practice")
	addGroupedCommand(rootCmd, newCreateMergeConflictCmd(), "practice")
	addGroupedCommand(rootCmd, newCompleteMergeCmd(), "practice")
	addGroupedCommand(rootCmd, newCleanupCmd(), "practice")

	rootCmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
	addGroupedCommand(rootCmd, newDoctorCmd(), "admin")

	return rootCmd
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
