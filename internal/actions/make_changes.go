package actions

import (
	"fmt"
	"os"

	"conflictlab.dev/conflictlab/internal/config"
	"conflictlab.dev/conflictlab/internal/git"
	"conflictlab.dev/conflictlab/internal/runtime"
	"conflictlab.dev/conflictlab/internal/tui/style"
	"conflictlab.dev/conflictlab/internal/utils"
)

// MakeChangesCommand is the command name recorded in the user log
const MakeChangesCommand = "make-changes"

// MakeChangesOptions contains options for the make-changes command
type MakeChangesOptions struct{}

// changeRequest is everything the user typed for one edit
type changeRequest struct {
	userName string
	email    string
	branch   string
	lines    [3]string
}

// content renders the three edited lines of the tracked file
func (r changeRequest) content() string {
	return fmt.Sprintf("Line 1%s\nLine 2%s\nLine 3%s", r.lines[0], r.lines[1], r.lines[2])
}

// MakeChangesAction asks who is editing and what to write, then commits the
// edit on a new feature branch cut from the integration branch
func MakeChangesAction(ctx *runtime.Context, _ MakeChangesOptions) error {
	if _, err := requireRepo(ctx); err != nil {
		return err
	}

	req, err := promptChange(ctx)
	if err != nil {
		return err
	}

	settings := ctx.Settings
	splog := ctx.Splog
	runner := ctx.Git()

	if err := runner.CreateAndCheckoutBranch(ctx, req.branch, settings.IntegrationBranch); err != nil {
		return err
	}
	splog.Info("Branch '%s' has been created.", style.ColorBranchName(req.branch, false))

	content := req.content()
	if err := os.WriteFile(trackedFilePath(ctx), []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", settings.TrackedFile, err)
	}

	ctx.Session.AppendLog(config.LogEntry{
		Command: MakeChangesCommand,
		Branch:  req.branch,
		User:    req.userName,
		Email:   req.email,
		Content: content,
	})

	if err := runner.Add(ctx, settings.TrackedFile); err != nil {
		return err
	}
	splog.Info("Changes on feature branch '%s' have been staged.", req.branch)

	if err := runner.Commit(ctx, git.CommitOptions{
		Message:     fmt.Sprintf("Edit the first three lines of file by %s", req.userName),
		AuthorName:  req.userName,
		AuthorEmail: req.email,
	}); err != nil {
		return err
	}
	splog.Info("Changes on branch '%s' have been committed by %s.", req.branch, req.userName)

	open, err := ctx.Prompter.Confirm("Do you want to open the file you've just made changes to?", false)
	if err != nil {
		return err
	}
	if open {
		openTrackedFile(ctx)
	}
	return nil
}

func promptChange(ctx *runtime.Context) (changeRequest, error) {
	settings := ctx.Settings
	var req changeRequest

	name, err := ctx.Prompter.Input("Who is making this change?", settings.DefaultUser)
	if err != nil {
		return req, err
	}
	req.userName = name
	req.email = utils.EmailFromName(name, settings.EmailDomain)

	selector, err := ctx.Prompter.Input("Branch to work on. Please type 'a' or 'b'", "")
	if err != nil {
		return req, err
	}
	req.branch = utils.FeatureBranchName(settings.BranchPrefix, selector)

	for i := range req.lines {
		line, err := ctx.Prompter.Input(fmt.Sprintf("Please type your input for Line %d", i+1), "")
		if err != nil {
			return req, err
		}
		req.lines[i] = line
	}
	return req, nil
}
