package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	clerrors "conflictlab.dev/conflictlab/internal/errors"
	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/testhelpers"
)

func TestParseCurrentBranch(t *testing.T) {
	t.Parallel()

	t.Run("picks the starred line", func(t *testing.T) {
		t.Parallel()
		name, err := git.ParseCurrentBranch("  feature-a\n* feature-b\n  main")
		require.NoError(t, err)
		require.Equal(t, "feature-b", name)
	})

	t.Run("empty listing has no branch", func(t *testing.T) {
		t.Parallel()
		_, err := git.ParseCurrentBranch("")
		require.ErrorIs(t, err, clerrors.ErrNoCurrentBranch)
	})

	t.Run("detached head has no branch", func(t *testing.T) {
		t.Parallel()
		_, err := git.ParseCurrentBranch("* (HEAD detached at 1a2b3c4)\n  main")
		require.ErrorIs(t, err, clerrors.ErrNoCurrentBranch)
	})
}

func TestBranchOperations(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.CommitFile("hello.txt", "", "init"))
	runner := git.NewCommandRunner(repo.Dir)

	current, err := runner.GetCurrentBranch(ctx)
	require.NoError(t, err)
	require.Equal(t, "main", current)

	require.NoError(t, runner.CreateAndCheckoutBranch(ctx, "feature-a", ""))
	current, err = runner.GetCurrentBranch(ctx)
	require.NoError(t, err)
	require.Equal(t, "feature-a", current)

	// Creating it twice fails
	require.Error(t, runner.CreateAndCheckoutBranch(ctx, "feature-a", ""))

	require.NoError(t, repo.CheckoutBranch("main"))
	current, err = runner.GetCurrentBranch(ctx)
	require.NoError(t, err)
	require.Equal(t, "main", current)

	// Branching from an explicit start point while elsewhere
	require.NoError(t, repo.CheckoutBranch("feature-a"))
	require.NoError(t, repo.CommitFile("hello.txt", "on a", "edit a"))
	require.NoError(t, runner.CreateAndCheckoutBranch(ctx, "feature-b", "main"))
	content, err := repo.ReadFile("hello.txt")
	require.NoError(t, err)
	require.Empty(t, content)
}

func TestCommitAndStaging(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	runner := git.NewCommandRunner(repo.Dir)

	require.NoError(t, repo.WriteFile("hello.txt", "content"))
	require.NoError(t, runner.Add(ctx, "hello.txt"))

	staged, err := runner.HasStagedChanges(ctx)
	require.NoError(t, err)
	require.True(t, staged)

	err = runner.Commit(ctx, git.CommitOptions{
		Message:     "Edit the first three lines of file by Alice",
		AuthorName:  "Alice",
		AuthorEmail: "alice@example.com",
	})
	require.NoError(t, err)

	author, err := repo.RunGitCommandAndGetOutput("log", "-1", "--format=%an <%ae>")
	require.NoError(t, err)
	require.Equal(t, "Alice <alice@example.com>", author)

	staged, err = runner.HasStagedChanges(ctx)
	require.NoError(t, err)
	require.False(t, staged)
}
