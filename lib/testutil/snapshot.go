package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func isExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// Snapshot compares data with snapshotFile, creating the file on first use.
func Snapshot(t *testing.T, data []byte, snapshotFile string) {
	if isExists(snapshotFile) {
		expected, err := os.ReadFile(snapshotFile)
		require.Nil(t, err)
		require.Equal(t, string(expected), string(data))
		return
	}

	require.Nil(t, os.WriteFile(snapshotFile, data, 0o644))
}
