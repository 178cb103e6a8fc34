package git

import (
	"context"
	"fmt"
	"strings"

	clerrors "conflictlab.dev/conflictlab/internal/errors"
)

// Init initializes the working directory as a git repository
func (r *CommandRunner) Init(ctx context.Context) error {
	if _, err := r.Run(ctx, "init"); err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch starting at
// startPoint, or at HEAD when startPoint is empty
func (r *CommandRunner) CreateAndCheckoutBranch(ctx context.Context, branchName, startPoint string) error {
	args := []string{"checkout", "-b", branchName}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	_, err := r.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// GetCurrentBranch reads the active branch from `git branch`, taking the line
// marked with "*". A detached HEAD or an empty listing yields ErrNoCurrentBranch.
func (r *CommandRunner) GetCurrentBranch(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "branch")
	if err != nil {
		return "", fmt.Errorf("failed to list branches: %w", err)
	}
	return ParseCurrentBranch(out)
}

// ParseCurrentBranch extracts the active branch from `git branch` output
func ParseCurrentBranch(listing string) (string, error) {
	for _, line := range strings.Split(listing, "\n") {
		if !strings.HasPrefix(line, "*") {
			continue
		}
		name := strings.TrimSpace(strings.Trim(line, "* "))
		if name == "" || strings.HasPrefix(name, "(") {
			break
		}
		return name, nil
	}
	return "", clerrors.ErrNoCurrentBranch
}
