package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/testhelpers"
)

func TestCommit(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_EDITOR", "true")

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.CommitFile("hello.txt", "", "Initial commit on main"))
	runner := git.NewCommandRunner(repo.Dir)

	t.Run("message and author override", func(t *testing.T) {
		require.NoError(t, repo.WriteFile("hello.txt", "Line 1X"))
		require.NoError(t, runner.Add(ctx, "hello.txt"))
		require.NoError(t, runner.Commit(ctx, git.CommitOptions{
			Message:     "Edit the first three lines of file by Alice",
			AuthorName:  "Alice",
			AuthorEmail: "alice@example.com",
		}))

		author, err := repo.RunGitCommandAndGetOutput("log", "-1", "--format=%an <%ae>|%cn")
		require.NoError(t, err)
		require.Equal(t, "Alice <alice@example.com>|Test User", author)
	})

	t.Run("nothing to commit is an error", func(t *testing.T) {
		err := runner.Commit(ctx, git.CommitOptions{Message: "empty"})
		require.Error(t, err)
	})
}
