package git

import (
	"context"
	"strings"
)

// Markers git prints when a merge stops on conflicts
const (
	conflictStdoutMarker = "CONFLICT"
	conflictStderrMarker = "Automatic merge failed"
)

// MergeResult describes the outcome of a merge attempt
type MergeResult struct {
	Output
	Conflicted    bool
	UnmergedPaths []string
}

// HasConflictMarkers applies the textual conflict check to merge output
func HasConflictMarkers(out Output) bool {
	return strings.Contains(out.Stdout, conflictStdoutMarker) ||
		strings.Contains(out.Stderr, conflictStderrMarker)
}

// Merge merges branch into the current branch. A conflicted merge is not an
// error: it is reported through MergeResult.Conflicted. Any other failure is
// returned as an error alongside the captured output.
func (r *CommandRunner) Merge(ctx context.Context, branch string) (*MergeResult, error) {
	out, mergeErr := r.RunCapture(ctx, "merge", branch)
	result := &MergeResult{Output: out}

	paths, err := r.GetUnmergedPaths(ctx)
	if err != nil {
		if mergeErr != nil {
			return result, mergeErr
		}
		return result, err
	}
	result.UnmergedPaths = paths
	result.Conflicted = HasConflictMarkers(out) || len(paths) > 0

	if mergeErr != nil && !result.Conflicted {
		return result, mergeErr
	}
	return result, nil
}

// IsMergeInProgress reports whether MERGE_HEAD exists
func (r *CommandRunner) IsMergeInProgress(ctx context.Context) bool {
	_, err := r.Run(ctx, "rev-parse", "-q", "--verify", "MERGE_HEAD")
	return err == nil
}
