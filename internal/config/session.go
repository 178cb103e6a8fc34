package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MarkerFileName records the path of the practice repository
	MarkerFileName = "repo_path.txt"
	// UserLogFileName is the append-only record of edits
	UserLogFileName = "user_log.txt"
)

// LogEntry is one block of the user log. Command is the CLI command that
// produced the entry, e.g. "make-changes", not an internal step name such as
// make_change_on_branch.
type LogEntry struct {
	Command string
	Branch  string
	User    string
	Email   string
	Content string
}

// String renders the entry in the user log format
func (e LogEntry) String() string {
	return fmt.Sprintf("%s | %s | %s | %s\n Changes: \n %s\n",
		e.Command, e.Branch, strings.ToLower(e.User), e.Email, e.Content)
}

// Session is the state carried between invocations. It is loaded once when a
// command starts and saved once when it ends.
type Session struct {
	RepoPath string

	dir     string
	pending []LogEntry
	cleared bool
}

// LoadSession reads the session from the state files in dir.
// A missing marker leaves RepoPath empty.
func LoadSession(dir string) (*Session, error) {
	s := &Session{dir: dir}

	f, err := os.Open(s.MarkerPath())
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read repo marker: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		s.RepoPath = strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read repo marker: %w", err)
	}
	return s, nil
}

// Dir returns the directory holding the state files
func (s *Session) Dir() string {
	return s.dir
}

// MarkerPath returns the path of the repository marker
func (s *Session) MarkerPath() string {
	return filepath.Join(s.dir, MarkerFileName)
}

// UserLogPath returns the path of the user log
func (s *Session) UserLogPath() string {
	return filepath.Join(s.dir, UserLogFileName)
}

// HasRepo reports whether a repository has been recorded
func (s *Session) HasRepo() bool {
	return s.RepoPath != ""
}

// AppendLog queues an entry for the user log
func (s *Session) AppendLog(entry LogEntry) {
	s.pending = append(s.pending, entry)
}

// Clear marks the session for removal. Save will delete both state files.
func (s *Session) Clear() {
	s.RepoPath = ""
	s.pending = nil
	s.cleared = true
}

// Cleared reports whether Clear was called
func (s *Session) Cleared() bool {
	return s.cleared
}

// Save persists the session: writes the marker and appends queued log entries,
// or removes both files if the session was cleared.
func (s *Session) Save() error {
	if s.cleared {
		for _, path := range []string{s.MarkerPath(), s.UserLogPath()} {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove %s: %w", filepath.Base(path), err)
			}
		}
		s.cleared = false
		return nil
	}

	if s.RepoPath != "" {
		if err := os.WriteFile(s.MarkerPath(), []byte(s.RepoPath), 0600); err != nil {
			return fmt.Errorf("failed to write repo marker: %w", err)
		}
	}

	if len(s.pending) == 0 {
		return nil
	}

	f, err := os.OpenFile(s.UserLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open user log: %w", err)
	}
	defer f.Close()

	for _, entry := range s.pending {
		if _, err := f.WriteString(entry.String()); err != nil {
			return fmt.Errorf("failed to write user log: %w", err)
		}
	}
	s.pending = nil
	return nil
}
