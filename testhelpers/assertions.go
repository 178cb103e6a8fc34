// Package testhelpers provides testing utilities for conflictlab, including
// scenes, git repository helpers and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// ExpectBranches asserts that the repository has exactly the expected branches
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	actual := append([]string{}, branches...)
	want := append([]string{}, expected...)
	sort.Strings(actual)
	sort.Strings(want)
	require.Equal(t, want, actual, "Branches do not match")
}

// ExpectCommits asserts that the newest commits on branch have the expected
// subjects, newest first
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	out, err := repo.RunGitCommandAndGetOutput("log", "--format=%s", branch)
	require.NoError(t, err, "Failed to list commits")

	commits := splitLines(out)
	if len(commits) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(commits))
		return
	}
	require.Equal(t, expected, commits[:len(expected)], "Commits do not match")
}

// ExpectFileContent asserts the content of a file in the working tree
func ExpectFileContent(t *testing.T, repo *GitRepo, name, expected string) {
	t.Helper()

	content, err := repo.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, expected, content)
}
