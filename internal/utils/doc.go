// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Opening files with the platform's default application
//   - Deriving user identities from display names
package utils
