package git

import (
	"context"
	"fmt"
	"strings"
)

// Add stages the given paths
func (r *CommandRunner) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add"}, paths...)
	if _, err := r.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage %s: %w", strings.Join(paths, ", "), err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *CommandRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// GetUnmergedPaths returns the paths git still considers conflicted
func (r *CommandRunner) GetUnmergedPaths(ctx context.Context) ([]string, error) {
	lines, err := r.RunLines(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list unmerged paths: %w", err)
	}
	return lines, nil
}
