package git

import (
	"context"
	"fmt"
)

// GetUserEmail returns the email git would commit with, or "" if none resolves
func (r *CommandRunner) GetUserEmail(ctx context.Context) string {
	email, err := r.Run(ctx, "config", "user.email")
	if err != nil {
		return ""
	}
	return email
}

// EnsureIdentity writes a repository-local user.name and user.email when git
// cannot resolve an identity on its own. It reports whether anything was written.
func (r *CommandRunner) EnsureIdentity(ctx context.Context, name, email string) (bool, error) {
	if r.GetUserEmail(ctx) != "" {
		return false, nil
	}
	if _, err := r.Run(ctx, "config", "user.name", name); err != nil {
		return false, fmt.Errorf("failed to set git user name: %w", err)
	}
	if _, err := r.Run(ctx, "config", "user.email", email); err != nil {
		return false, fmt.Errorf("failed to set git user email: %w", err)
	}
	return true, nil
}

// Version returns the output of `git version`
func (r *CommandRunner) Version(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "version")
	if err != nil {
		return "", fmt.Errorf("git is not installed or not in PATH: %w", err)
	}
	return out, nil
}
