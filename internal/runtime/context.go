package runtime

import (
	"context"
	"fmt"

	"conflictlab.dev/conflictlab/internal/config"
	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/internal/tui"
	"conflictlab.dev/conflictlab/internal/utils"
)

// Opener opens a file for the user to look at
type Opener interface {
	OpenFile(path string) error
}

// OpenerFunc adapts a function to the Opener interface
type OpenerFunc func(path string) error

// OpenFile calls f(path)
func (f OpenerFunc) OpenFile(path string) error {
	return f(path)
}

// SystemOpener opens files with the platform's default application
var SystemOpener Opener = OpenerFunc(utils.OpenFile)

// NoopOpener opens nothing
var NoopOpener Opener = OpenerFunc(func(string) error { return nil })

// Context provides access to session state and collaborators for commands
type Context struct {
	context.Context
	Splog    *tui.Splog
	Settings *config.Settings
	Session  *config.Session
	Prompter tui.Prompter
	Opener   Opener
}

// NewContext loads the session from the settings' state dir and wires the
// default prompter and opener
func NewContext(ctx context.Context, settings *config.Settings, splog *tui.Splog) (*Context, error) {
	session, err := config.LoadSession(settings.StateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	opener := SystemOpener
	if settings.NoOpen {
		opener = NoopOpener
	}

	return &Context{
		Context:  ctx,
		Splog:    splog,
		Settings: settings,
		Session:  session,
		Prompter: tui.NewPrompter(),
		Opener:   opener,
	}, nil
}

// Git returns a git runner for the session's repository
func (c *Context) Git() *git.CommandRunner {
	return git.NewCommandRunner(c.Session.RepoPath).WithLogger(c.Splog)
}

// Close saves the session and closes the log file. It is called once per invocation.
func (c *Context) Close() error {
	saveErr := c.Session.Save()
	if err := c.Splog.Close(); err != nil && saveErr == nil {
		return err
	}
	return saveErr
}

type contextKey struct{}

// WithContext returns a copy of parent carrying c, for handing to cobra commands
func WithContext(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey{}, c)
}

// GetContext returns the Context stored by WithContext
func GetContext(ctx context.Context) (*Context, error) {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*Context); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("conflictlab context not initialized")
}
