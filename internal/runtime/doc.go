// Package runtime provides the execution context for conflictlab commands.
//
// It encapsulates shared dependencies needed by actions, such as the session
// state, settings, logger, prompter and file opener.
package runtime
