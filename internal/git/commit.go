package git

import (
	"context"
	"fmt"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	Message     string
	AuthorName  string
	AuthorEmail string
}

// Commit creates a commit with the given options. When no message is given git
// opens its editor, so the command runs attached to the terminal.
func (r *CommandRunner) Commit(ctx context.Context, opts CommitOptions) error {
	if opts.Message == "" {
		if err := r.RunInteractive(ctx, "commit"); err != nil {
			return fmt.Errorf("failed to commit: %w", err)
		}
		return nil
	}

	var env []string
	if opts.AuthorName != "" {
		env = append(env, fmt.Sprintf("GIT_AUTHOR_NAME=%s", opts.AuthorName))
	}
	if opts.AuthorEmail != "" {
		env = append(env, fmt.Sprintf("GIT_AUTHOR_EMAIL=%s", opts.AuthorEmail))
	}

	if _, err := r.RunWithEnv(ctx, env, "commit", "-m", opts.Message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
