package actions

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"conflictlab.dev/conflictlab/internal/config"
	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui/style"
)

// DoctorOptions contains options for the doctor command
type DoctorOptions struct {
	// WriteConfig writes the default settings file when none exists
	WriteConfig bool
}

// practiceState is what doctor learned about the practice repo
type practiceState struct {
	recorded      bool
	valid         bool
	branches      []string
	current       string
	merging       bool
	headIsMerge   bool
	unmergedPaths []string
}

// DoctorAction checks the environment and the practice repo and suggests the
// next step of the workflow
func DoctorAction(ctx *runtime.Context, opts DoctorOptions) error {
	splog := ctx.Splog

	splog.Info("Running conflictlab doctor...")
	splog.Newline()

	var warnings []string
	var problems []string

	splog.Info("Environment:")
	warnings, problems = checkEnvironment(ctx, warnings, problems)
	if opts.WriteConfig {
		problems = writeDefaultSettings(ctx, problems)
	}

	splog.Newline()

	splog.Info("Practice repo:")
	state, warnings, problems := checkPractice(ctx, warnings, problems)

	splog.Newline()
	if len(problems) > 0 {
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(problems), len(warnings))
		for _, p := range problems {
			splog.Warn("  ❌ %s", p)
		}
		for _, w := range warnings {
			splog.Warn("  ⚠️  %s", w)
		}
		return fmt.Errorf("doctor found %d error(s)", len(problems))
	}

	if len(warnings) > 0 {
		splog.Info("Doctor found %d warning(s).", len(warnings))
		for _, w := range warnings {
			splog.Warn("  ⚠️  %s", w)
		}
	} else {
		splog.Info("✅ All checks passed.")
	}
	splog.Tip("Next step: %s", style.ColorCommand(nextStep(ctx, state)))
	return nil
}

func checkEnvironment(ctx *runtime.Context, warnings, problems []string) ([]string, []string) {
	splog := ctx.Splog
	runner := git.NewCommandRunner("").WithLogger(splog)

	version, err := runner.Version(ctx)
	if err != nil {
		problems = append(problems, "git is not installed or not in PATH")
		splog.Info("  ❌ git is not installed or not in PATH")
		return warnings, problems
	}
	splog.Info("  ✅ %s", version)

	if email := runner.GetUserEmail(ctx); email != "" {
		splog.Info("  ✅ git identity: %s", email)
	} else {
		splog.Info("  ➖ no git identity configured; initial-setup will use %s", ctx.Settings.DefaultUser)
	}

	splog.Info("  ✅ state directory: %s", style.ColorPath(ctx.Session.Dir()))
	return warnings, problems
}

// writeDefaultSettings saves the default settings unless a settings file
// already exists
func writeDefaultSettings(ctx *runtime.Context, problems []string) []string {
	splog := ctx.Splog
	path := config.SettingsPath()
	if path == "" {
		return append(problems, "no config directory could be resolved")
	}
	if _, err := os.Stat(path); err == nil {
		splog.Info("  ➖ settings file already exists: %s", style.ColorPath(path))
		return problems
	}
	if err := config.DefaultSettings().Save(path); err != nil {
		return append(problems, err.Error())
	}
	splog.Info("  ✅ wrote default settings: %s", style.ColorPath(path))
	return problems
}

func checkPractice(ctx *runtime.Context, warnings, problems []string) (practiceState, []string, []string) {
	splog := ctx.Splog
	settings := ctx.Settings
	var state practiceState

	if !ctx.Session.HasRepo() {
		splog.Info("  ➖ no practice repo recorded")
		return state, warnings, problems
	}
	state.recorded = true

	repoPath := ctx.Session.RepoPath
	repo, err := git.OpenRepository(repoPath)
	if err != nil || !git.IsRepoRoot(repoPath) {
		problems = append(problems, fmt.Sprintf("%s points at %s, which is not a git repository", ctx.Session.MarkerPath(), repoPath))
		splog.Info("  ❌ %s is not a git repository", repoPath)
		return state, warnings, problems
	}
	state.valid = true
	splog.Info("  ✅ repository: %s", style.ColorPath(repo.Path()))

	if files, err := repo.TrackedFiles(); err != nil || !slices.Contains(files, settings.TrackedFile) {
		warnings = append(warnings, fmt.Sprintf("'%s' is not committed in the practice repo", settings.TrackedFile))
	}
	if _, err := statTrackedFile(ctx); err != nil {
		warnings = append(warnings, err.Error())
	}

	branches, err := repo.GetBranchNames()
	if err != nil {
		problems = append(problems, err.Error())
		return state, warnings, problems
	}
	state.branches = branches
	for _, branch := range settings.FeatureBranches() {
		if slices.Contains(branches, branch) {
			splog.Info("  ✅ %s created", style.ColorBranchName(branch, false))
		} else {
			splog.Info("  ➖ %s not created yet", style.ColorBranchName(branch, false))
		}
	}

	runner := ctx.Git()
	if current, err := runner.GetCurrentBranch(ctx); err == nil {
		state.current = current
		splog.Info("  ✅ on branch %s", style.ColorBranchName(current, false))
	} else {
		warnings = append(warnings, "HEAD is not on a branch")
	}

	state.merging = runner.IsMergeInProgress(ctx)
	if state.merging {
		paths, err := runner.GetUnmergedPaths(ctx)
		if err == nil {
			state.unmergedPaths = paths
		}
		if len(state.unmergedPaths) > 0 {
			splog.Info("  ⚔️  merge in progress, unmerged: %s", strings.Join(state.unmergedPaths, ", "))
		} else {
			splog.Info("  ⚔️  merge in progress, conflicts staged")
		}
	}

	if head, err := repo.HeadCommit(); err == nil {
		state.headIsMerge = head.IsMerge()
	}
	return state, warnings, problems
}

// nextStep picks the command that moves the workflow forward from state
func nextStep(ctx *runtime.Context, state practiceState) string {
	settings := ctx.Settings
	switch {
	case !state.recorded || !state.valid:
		return "initial-setup"
	case state.merging:
		return "complete-merge"
	case state.headIsMerge:
		return "cleanup"
	}
	for _, branch := range settings.FeatureBranches() {
		if !slices.Contains(state.branches, branch) {
			return MakeChangesCommand
		}
	}
	return "create-merge-conflict"
}
