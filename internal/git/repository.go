package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// CommitSummary is a short description of a commit
type CommitSummary struct {
	Hash    string
	Message string
	Parents int
}

// ShortHash returns the abbreviated commit hash
func (c CommitSummary) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// IsMerge reports whether the commit has more than one parent
func (c CommitSummary) IsMerge() bool {
	return c.Parents > 1
}

// OpenRepository opens the git repository rooted exactly at path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpen(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// IsRepoRoot reports whether path is the root of a git repository
func IsRepoRoot(path string) bool {
	_, err := OpenRepository(path)
	return err == nil
}

// Path returns the absolute path of the repository root
func (r *Repository) Path() string {
	return r.path
}

// GetBranchNames returns all branch names
func (r *Repository) GetBranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// HeadCommit summarizes the commit HEAD points at
func (r *Repository) HeadCommit() (CommitSummary, error) {
	head, err := r.Head()
	if err != nil {
		return CommitSummary{}, fmt.Errorf("failed to get HEAD: %w", err)
	}

	commit, err := r.CommitObject(head.Hash())
	if err != nil {
		return CommitSummary{}, fmt.Errorf("failed to read HEAD commit: %w", err)
	}

	return CommitSummary{
		Hash:    commit.Hash.String(),
		Message: strings.TrimSpace(commit.Message),
		Parents: commit.NumParents(),
	}, nil
}

// TrackedFiles lists the files in the HEAD tree
func (r *Repository) TrackedFiles() ([]string, error) {
	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	commit, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD tree: %w", err)
	}

	var files []string
	for _, entry := range tree.Entries {
		files = append(files, entry.Name)
	}
	return files, nil
}
