package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/testhelpers"
)

func TestOpenRepository(t *testing.T) {
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	t.Run("reads head commit and tracked files", func(t *testing.T) {
		repo, err := testhelpers.NewGitRepo(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, repo.CommitFile("hello.txt", "", "Initial commit on main"))

		opened, err := git.OpenRepository(repo.Dir)
		require.NoError(t, err)

		head, err := opened.HeadCommit()
		require.NoError(t, err)
		require.Equal(t, "Initial commit on main", head.Message)
		require.Equal(t, 0, head.Parents)
		require.False(t, head.IsMerge())
		require.Len(t, head.ShortHash(), 7)

		files, err := opened.TrackedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"hello.txt"}, files)

		branches, err := opened.GetBranchNames()
		require.NoError(t, err)
		require.Equal(t, []string{"main"}, branches)
	})

	t.Run("plain directory is not a repo root", func(t *testing.T) {
		require.False(t, git.IsRepoRoot(t.TempDir()))
	})

	t.Run("removed directory is not a repo root", func(t *testing.T) {
		require.False(t, git.IsRepoRoot("/nonexistent/conflictlab/repo"))
	})
}
