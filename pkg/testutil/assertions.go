package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks that path is a symbolic link pointing to target
func AssertSymlink(t *testing.T, path, target string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected a link at %s", path)
	require.True(t, info.Mode()&os.ModeSymlink != 0, "%s is not a symlink", path)

	got, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

// Backups returns the backup files created next to path
func Backups(t *testing.T, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(path + ".*.back")
	require.NoError(t, err)
	return matches
}

// AssertNoBackups checks that no backup of path exists
func AssertNoBackups(t *testing.T, path string) {
	t.Helper()
	assert.Empty(t, Backups(t, path), "unexpected backup of %s", path)
}
