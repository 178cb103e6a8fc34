package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/testhelpers"
)

func TestEnsureIdentity(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	t.Run("keeps an existing identity", func(t *testing.T) {
		repo, err := testhelpers.NewGitRepo(t.TempDir())
		require.NoError(t, err)
		runner := git.NewCommandRunner(repo.Dir)

		wrote, err := runner.EnsureIdentity(ctx, "Anonymous", "anonymous@example.com")
		require.NoError(t, err)
		require.False(t, wrote)
		require.Equal(t, "test@example.com", runner.GetUserEmail(ctx))
	})

	t.Run("writes a local identity when none resolves", func(t *testing.T) {
		dir := t.TempDir()
		runner := git.NewCommandRunner(dir)
		require.NoError(t, runner.Init(ctx))
		require.Empty(t, runner.GetUserEmail(ctx))

		wrote, err := runner.EnsureIdentity(ctx, "Anonymous", "anonymous@example.com")
		require.NoError(t, err)
		require.True(t, wrote)
		require.Equal(t, "anonymous@example.com", runner.GetUserEmail(ctx))
	})
}
