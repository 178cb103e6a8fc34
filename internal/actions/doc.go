// Package actions provides the workflow steps behind each CLI command.
//
// Each action corresponds to a conflictlab command (initial-setup,
// make-changes, create-merge-conflict, complete-merge, cleanup, doctor) and drives git
// through the runtime.Context it is given.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the Session, Settings, Splog and prompter
//   - Actions never write the state files themselves; they update the Session,
//     which is saved when the command finishes
//   - Missing state is reported with errors.ErrRepoNotFound
package actions
