// Package tui provides the terminal user interface for conflictlab.
//
// It handles:
//   - Interactive prompts (using survey and bubbletea, with a line-based fallback)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
