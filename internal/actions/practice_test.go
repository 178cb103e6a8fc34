package actions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/actions"
	clerrors "conflictlab.dev/conflictlab/internal/errors"
	"conflictlab.dev/conflictlab/testhelpers"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// newPractice runs initial-setup in a fresh scene and starts the next invocation
func newPractice(t *testing.T) *testhelpers.Scene {
	t.Helper()
	s := testhelpers.NewScene(t)
	require.NoError(t, actions.SetupAction(s.Context, actions.SetupOptions{TempDir: s.TempDir}))
	s.Reload()
	return s
}

// makeChange runs make-changes with the given answers and declines opening the file
func makeChange(t *testing.T, s *testhelpers.Scene, user, selector string, lines ...string) {
	t.Helper()
	require.Len(t, lines, 3)
	s.Answer(user, selector, lines[0], lines[1], lines[2], "n")
	require.NoError(t, actions.MakeChangesAction(s.Context, actions.MakeChangesOptions{}))
	s.Reload()
}

// divergedPractice leaves feature-a and feature-b with conflicting edits and
// feature-b checked out
func divergedPractice(t *testing.T) *testhelpers.Scene {
	t.Helper()
	s := newPractice(t)
	makeChange(t, s, "Alice", "a", "X", "Y", "Z")
	makeChange(t, s, "Bob", "b", "P", "Q", "R")
	return s
}

func readUserLog(t *testing.T, s *testhelpers.Scene) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.StateDir, "user_log.txt"))
	require.NoError(t, err)
	return string(data)
}

func TestOpenTrackedFile(t *testing.T) {
	t.Run("warns on an unsupported platform", func(t *testing.T) {
		s := divergedPractice(t)
		s.Opener.Err = clerrors.ErrUnsupportedPlatform

		require.NoError(t, actions.CreateMergeConflictAction(s.Context, actions.CreateMergeConflictOptions{}))
		require.Len(t, s.Opener.Opened, 1)
		require.Contains(t, s.Output.String(), "Unsupported OS for auto-open.")
	})

	t.Run("warns when the tracked file is missing", func(t *testing.T) {
		s := newPractice(t)
		require.NoError(t, os.Remove(filepath.Join(s.Context.Session.RepoPath, "hello.txt")))

		actions.OpenTrackedFile(s.Context)
		require.Empty(t, s.Opener.Opened)
		out := s.Output.String()
		require.Contains(t, out, "'hello.txt' file not found.")
		require.NotContains(t, out, "Opening")
	})

	t.Run("opens the tracked file when present", func(t *testing.T) {
		s := newPractice(t)

		actions.OpenTrackedFile(s.Context)
		require.Equal(t, []string{filepath.Join(s.Context.Session.RepoPath, "hello.txt")}, s.Opener.Opened)
	})
}
