//go:build !darwin && !linux && !windows

package utils

import (
	clerrors "conflictlab.dev/conflictlab/internal/errors"
)

// OpenFile reports that auto-open is not available on this platform
func OpenFile(_ string) error {
	return clerrors.ErrUnsupportedPlatform
}
