package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/testhelpers"
)

// divergedRepo builds main plus feature-a and feature-b that both rewrite hello.txt
func divergedRepo(t *testing.T, contentA, contentB string) *testhelpers.GitRepo {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.CommitFile("hello.txt", "", "Initial commit on main"))

	require.NoError(t, repo.CreateAndCheckoutBranch("feature-a"))
	require.NoError(t, repo.CommitFile("hello.txt", contentA, "edit a"))

	require.NoError(t, repo.CheckoutBranch("main"))
	require.NoError(t, repo.CreateAndCheckoutBranch("feature-b"))
	require.NoError(t, repo.CommitFile("hello.txt", contentB, "edit b"))
	return repo
}

func TestHasConflictMarkers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		out  git.Output
		want bool
	}{
		{"conflict on stdout", git.Output{Stdout: "CONFLICT (content): Merge conflict in hello.txt"}, true},
		{"automatic merge failed on stderr", git.Output{Stderr: "Automatic merge failed; fix conflicts"}, true},
		{"automatic merge failed on stdout only", git.Output{Stdout: "Automatic merge failed; fix conflicts"}, false},
		{"clean merge", git.Output{Stdout: "Merge made by the 'ort' strategy."}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, git.HasConflictMarkers(tc.out))
		})
	}
}

func TestMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("reports conflict when both branches edit the same lines", func(t *testing.T) {
		repo := divergedRepo(t, "Line 1X\nLine 2Y\nLine 3Z", "Line 1P\nLine 2Q\nLine 3R")
		runner := git.NewCommandRunner(repo.Dir)

		result, err := runner.Merge(ctx, "feature-a")
		require.NoError(t, err)
		require.True(t, result.Conflicted)
		require.Contains(t, result.Stdout, "CONFLICT")
		require.Equal(t, []string{"hello.txt"}, result.UnmergedPaths)
		require.True(t, runner.IsMergeInProgress(ctx))
	})

	t.Run("clean merge is not a conflict", func(t *testing.T) {
		repo := divergedRepo(t, "same", "same")
		runner := git.NewCommandRunner(repo.Dir)

		result, err := runner.Merge(ctx, "feature-a")
		require.NoError(t, err)
		require.False(t, result.Conflicted)
		require.Empty(t, result.UnmergedPaths)
		require.False(t, runner.IsMergeInProgress(ctx))
	})

	t.Run("missing branch is an error", func(t *testing.T) {
		repo := divergedRepo(t, "a", "b")
		runner := git.NewCommandRunner(repo.Dir)

		result, err := runner.Merge(ctx, "feature-missing")
		require.Error(t, err)
		require.False(t, result.Conflicted)
	})
}
