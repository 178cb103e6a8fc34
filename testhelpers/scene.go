package testhelpers

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"conflictlab.dev/conflictlab/internal/config"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui"
)

// Scene is an isolated conflictlab invocation: its own state directory, a
// parent directory for practice repos, captured output and scripted input.
//
// NOTE: scenes set process environment with t.Setenv and are not safe for
// parallel tests.
type Scene struct {
	T        *testing.T
	StateDir string
	TempDir  string
	Output   *bytes.Buffer
	Prompter *ScriptedPrompter
	Opener   *RecordingOpener
	Context  *runtime.Context
}

// NewScene creates a scene with default settings and no practice repo
func NewScene(t *testing.T) *Scene {
	t.Helper()

	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_EDITOR", "true")
	t.Setenv("GIT_MERGE_AUTOEDIT", "no")
	t.Setenv("CONFLICTLAB_TEST_NO_INTERACTIVE", "1")

	stateDir := t.TempDir()
	t.Setenv("CONFLICTLAB_CONFIG_HOME", t.TempDir())
	t.Setenv("CONFLICTLAB_STATE_DIR", stateDir)

	s := &Scene{
		T:        t,
		StateDir: stateDir,
		TempDir:  t.TempDir(),
		Output:   &bytes.Buffer{},
		Prompter: NewScriptedPrompter(),
		Opener:   &RecordingOpener{},
	}
	s.Context = s.newContext()
	return s
}

// Reload saves the session and starts a new invocation against the same state
// directory, as running the next command would
func (s *Scene) Reload() *runtime.Context {
	s.T.Helper()
	require.NoError(s.T, s.Context.Close())
	s.Context = s.newContext()
	return s.Context
}

// Repo returns the practice repository recorded in the session
func (s *Scene) Repo() *GitRepo {
	s.T.Helper()
	require.NotEmpty(s.T, s.Context.Session.RepoPath, "no practice repo recorded")
	return OpenGitRepo(s.Context.Session.RepoPath)
}

// Answer queues prompt answers for the next command
func (s *Scene) Answer(answers ...string) {
	s.Prompter.Queue(answers...)
}

func (s *Scene) newContext() *runtime.Context {
	s.T.Helper()

	settings := config.DefaultSettings()
	settings.StateDir = s.StateDir

	ctx, err := runtime.NewContext(context.Background(), settings, tui.NewSplogWithWriter(s.Output))
	require.NoError(s.T, err)
	ctx.Prompter = s.Prompter
	ctx.Opener = s.Opener
	return ctx
}
