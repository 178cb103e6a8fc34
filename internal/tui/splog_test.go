package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogConsole(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	splog := NewSplogWithWriter(&buf)

	splog.Info("Merging %s into %s...", "feature-b", "feature-a")
	splog.Warn("careful")
	splog.Error("Repo path not found.")
	splog.Tip("run %s", "cleanup")
	splog.Debug("hidden")
	splog.Newline()

	require.Equal(t,
		"Merging feature-b into feature-a...\n⚠️  careful\n❌ Repo path not found.\n💡 run cleanup\n\n",
		buf.String())
}

func TestSplogDebugMode(t *testing.T) {
	t.Setenv("DEBUG", "1")
	var buf bytes.Buffer
	splog := NewSplogWithWriter(&buf)

	splog.Debug("git %s", "merge feature-b")
	require.Equal(t, "git merge feature-b\n", buf.String())
}

func TestSplogFileLogging(t *testing.T) {
	t.Setenv("DEBUG", "")
	logPath := filepath.Join(t.TempDir(), "logs", "conflictlab.log")

	var console bytes.Buffer
	splog, err := NewSplogWithWriterAndConfig(&console, logPath)
	require.NoError(t, err)
	splog.Debug("git init")
	splog.Info("Created new Git repo")
	require.NoError(t, splog.Close())

	require.Equal(t, "Created new Git repo\n", console.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "git init")
	require.Contains(t, string(data), "Created new Git repo")
	require.Contains(t, string(data), "level=DEBUG")
}
