package runtime

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/config"
	"conflictlab.dev/conflictlab/internal/tui"
)

func newTestContext(t *testing.T, settings *config.Settings) *Context {
	t.Helper()
	ctx, err := NewContext(context.Background(), settings, tui.NewSplogWithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	return ctx
}

func TestNewContext(t *testing.T) {
	t.Run("loads the recorded repo path", func(t *testing.T) {
		settings := config.DefaultSettings()
		settings.StateDir = t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(settings.StateDir, config.MarkerFileName), []byte("/tmp/git_conflict_1\n"), 0600))

		ctx := newTestContext(t, settings)
		require.Equal(t, "/tmp/git_conflict_1", ctx.Session.RepoPath)
		require.Equal(t, "/tmp/git_conflict_1", ctx.Git().WorkingDir())
	})

	t.Run("noOpen selects the no-op opener", func(t *testing.T) {
		settings := config.DefaultSettings()
		settings.StateDir = t.TempDir()
		settings.NoOpen = true

		ctx := newTestContext(t, settings)
		require.NoError(t, ctx.Opener.OpenFile("/does/not/exist"))
	})
}

func TestContextClose(t *testing.T) {
	settings := config.DefaultSettings()
	settings.StateDir = t.TempDir()

	ctx := newTestContext(t, settings)
	ctx.Session.RepoPath = "/tmp/git_conflict_2"
	require.NoError(t, ctx.Close())

	data, err := os.ReadFile(filepath.Join(settings.StateDir, config.MarkerFileName))
	require.NoError(t, err)
	require.Equal(t, "/tmp/git_conflict_2", string(data))
}

func TestGetContext(t *testing.T) {
	_, err := GetContext(context.Background())
	require.Error(t, err)

	settings := config.DefaultSettings()
	settings.StateDir = t.TempDir()
	want := newTestContext(t, settings)

	got, err := GetContext(WithContext(context.Background(), want))
	require.NoError(t, err)
	require.Same(t, want, got)
}
