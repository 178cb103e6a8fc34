package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildVersion(t *testing.T) {
	t.Run("dev build", func(t *testing.T) {
		require.Equal(t, "dev", buildVersion())
	})

	t.Run("release build", func(t *testing.T) {
		oldVersion, oldCommit, oldDate := version, commit, date
		t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

		version, commit, date = "1.2.0", "0123456789abcdef", "2026-01-02"
		require.Equal(t, "1.2.0 (0123456, 2026-01-02)", buildVersion())
	})
}
