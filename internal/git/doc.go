// Package git provides low-level Git operations for the practice repository.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository setup (init, identity)
//   - Branch management (create, checkout, current branch)
//   - Staging, committing and merging
//   - Read-only repository inspection through go-git
//
// This package should be the only place where direct git commands are executed.
package git
