package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	clerrors "conflictlab.dev/conflictlab/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// Logger receives a debug line for every git invocation
type Logger interface {
	Debug(format string, args ...interface{})
}

// Output holds both streams of a finished git command
type Output struct {
	Stdout string
	Stderr string
}

// CommandRunner handles execution of git commands inside one working directory
type CommandRunner struct {
	workingDir string
	logger     Logger
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// WithLogger returns a copy of the runner that logs each command at debug level
func (r *CommandRunner) WithLogger(logger Logger) *CommandRunner {
	return &CommandRunner{workingDir: r.workingDir, logger: logger}
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command with the given context and returns the trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	out, err := r.runInternal(ctx, nil, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// RunWithEnv executes a git command with extra environment variables
func (r *CommandRunner) RunWithEnv(ctx context.Context, env []string, args ...string) (string, error) {
	out, err := r.runInternal(ctx, env, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// RunCapture executes a git command and returns both raw streams. The output is
// returned even when the command fails.
func (r *CommandRunner) RunCapture(ctx context.Context, args ...string) (Output, error) {
	return r.runInternal(ctx, nil, args...)
}

// RunLines executes a git command and returns output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunInteractive executes a git command with stdin/stdout/stderr connected to the terminal.
func (r *CommandRunner) RunInteractive(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	r.debug(args)

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return clerrors.NewGitCommandError("git", args, "", "", err)
	}
	return nil
}

func (r *CommandRunner) runInternal(ctx context.Context, env []string, args ...string) (Output, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}
	r.debug(args)

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return out, clerrors.NewGitCommandError("git", args, out.Stdout, out.Stderr, ctx.Err())
		}
		return out, clerrors.NewGitCommandError("git", args, out.Stdout, out.Stderr, err)
	}
	return out, nil
}

func (r *CommandRunner) debug(args []string) {
	if r.logger != nil {
		r.logger.Debug("git %s (in %s)", strings.Join(args, " "), r.workingDir)
	}
}
