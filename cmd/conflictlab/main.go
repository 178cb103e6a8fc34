// Package main provides the entry point for the conflictlab CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"

	"conflictlab.dev/conflictlab/internal/cli"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	rootCmd := cli.NewRootCmd(buildVersion())
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(buildVersion())); err != nil {
		os.Exit(1)
	}
}
