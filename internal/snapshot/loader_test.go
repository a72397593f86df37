package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysdash/sysdash/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidSnapshot(t *testing.T) {
	path := writeFile(t, t.TempDir(), "metrics.json",
		`{"hostname": "build-host", "cpu": {"cpu_cores": 4}}`)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Text("build-host"), snap.Hostname)
	assert.Equal(t, Count(4), snap.CPU.Cores)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")

	snap, err := Load(path)
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLoad))
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "./scripts/monitor.sh -o",
		"missing-file diagnostic names the collector command")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "metrics.json", `{"hostname": `)

	snap, err := Load(path)
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLoad))
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_NonObjectDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "metrics.json", `[1, 2, 3]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLoad))
}

func TestLoad_SparseDocumentSucceeds(t *testing.T) {
	path := writeFile(t, t.TempDir(), "metrics.json", `{}`)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Text(""), snap.Hostname)
}
