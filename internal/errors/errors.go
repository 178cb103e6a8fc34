// Package errors provides sentinel errors and custom error types for the conflictlab application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrRepoNotFound indicates that no repository marker exists or the marked repo is gone
	ErrRepoNotFound = errors.New("repo path not found")

	// ErrTrackedFileNotFound indicates that the practice file is missing from the repo
	ErrTrackedFileNotFound = errors.New("tracked file not found")

	// ErrUnsupportedPlatform indicates that files cannot be opened automatically on this OS
	ErrUnsupportedPlatform = errors.New("unsupported OS for auto-open")

	// ErrNoCurrentBranch indicates that git reported no checked-out branch
	ErrNoCurrentBranch = errors.New("no current branch")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
