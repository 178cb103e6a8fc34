// Package style holds the lipgloss styles used in command output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorBranchName colors a branch name, marking the current branch
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorPath colors a file system path
func ColorPath(path string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render(path)
}

// ColorCommand colors a conflictlab command name the user should run next
func ColorCommand(command string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("5")).
		Bold(true).
		Render("'" + command + "'")
}

// ColorConflict colors conflict notices
func ColorConflict(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorSuccess colors completion notices
func ColorSuccess(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Render(text)
}
