package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "nested", "dashboard.html")

	abs, err := Write(path, "<html></html>")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.html")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, err := Write(path, "fresh")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestWrite_ReturnsAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.html")

	abs, err := Write(path, "doc")
	require.NoError(t, err)
	assert.Equal(t, path, abs, "already-absolute paths come back unchanged")
}
