package actions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/actions"
	clerrors "conflictlab.dev/conflictlab/internal/errors"
	"conflictlab.dev/conflictlab/testhelpers"
)

func TestCleanupAction(t *testing.T) {
	t.Run("removes the repo and both state files", func(t *testing.T) {
		s := divergedPractice(t)
		repoPath := s.Context.Session.RepoPath

		require.NoError(t, actions.CleanupAction(s.Context, actions.CleanupOptions{}))
		s.Reload()

		require.NoDirExists(t, repoPath)
		require.NoFileExists(t, filepath.Join(s.StateDir, "repo_path.txt"))
		require.NoFileExists(t, filepath.Join(s.StateDir, "user_log.txt"))

		out := s.Output.String()
		require.Contains(t, out, "Removing repo_path.txt")
		require.Contains(t, out, "Removing user_log.txt")
	})

	t.Run("later commands report a missing repo", func(t *testing.T) {
		s := newPractice(t)
		require.NoError(t, actions.CleanupAction(s.Context, actions.CleanupOptions{}))
		s.Reload()

		require.ErrorIs(t, actions.MakeChangesAction(s.Context, actions.MakeChangesOptions{}), clerrors.ErrRepoNotFound)
		require.ErrorIs(t, actions.CreateMergeConflictAction(s.Context, actions.CreateMergeConflictOptions{}), clerrors.ErrRepoNotFound)
		require.ErrorIs(t, actions.CompleteMergeAction(s.Context, actions.CompleteMergeOptions{}), clerrors.ErrRepoNotFound)
	})

	t.Run("nothing to clean up", func(t *testing.T) {
		s := testhelpers.NewScene(t)

		require.NoError(t, actions.CleanupAction(s.Context, actions.CleanupOptions{}))
		require.Contains(t, s.Output.String(), "Nothing to clean up.")
	})

	t.Run("refuses to remove a directory it did not create", func(t *testing.T) {
		s := testhelpers.NewScene(t)
		other := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(s.StateDir, "repo_path.txt"), []byte(other), 0600))
		s.Reload()

		require.NoError(t, actions.CleanupAction(s.Context, actions.CleanupOptions{}))
		s.Reload()

		require.DirExists(t, other)
		require.NoFileExists(t, filepath.Join(s.StateDir, "repo_path.txt"))
		require.Contains(t, s.Output.String(), "Refusing to remove")
	})

	t.Run("removes a stale marker whose repo is gone", func(t *testing.T) {
		s := newPractice(t)
		require.NoError(t, os.RemoveAll(s.Context.Session.RepoPath))

		require.NoError(t, actions.CleanupAction(s.Context, actions.CleanupOptions{}))
		s.Reload()

		require.NoFileExists(t, filepath.Join(s.StateDir, "repo_path.txt"))
	})
}
