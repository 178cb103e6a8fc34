package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/testhelpers"
)

func TestStaging(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.CommitFile("hello.txt", "", "init"))
	runner := git.NewCommandRunner(repo.Dir)

	t.Run("nothing staged after a commit", func(t *testing.T) {
		staged, err := runner.HasStagedChanges(ctx)
		require.NoError(t, err)
		require.False(t, staged)
	})

	t.Run("add stages the file", func(t *testing.T) {
		require.NoError(t, repo.WriteFile("hello.txt", "Line 1X"))
		require.NoError(t, runner.Add(ctx, "hello.txt"))

		staged, err := runner.HasStagedChanges(ctx)
		require.NoError(t, err)
		require.True(t, staged)
	})

	t.Run("adding a missing path fails", func(t *testing.T) {
		err := runner.Add(ctx, "missing.txt")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to stage missing.txt")
	})

	t.Run("no unmerged paths outside a merge", func(t *testing.T) {
		paths, err := runner.GetUnmergedPaths(ctx)
		require.NoError(t, err)
		require.Empty(t, paths)
	})
}
