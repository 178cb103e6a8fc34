// Package config manages conflictlab configuration and state persistence.
//
// It handles:
//   - User settings loaded from the config directory
//   - The session state carried between invocations (repository marker and user log)
package config
