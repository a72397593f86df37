package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysdash/sysdash/internal/config"
	"github.com/sysdash/sysdash/internal/errors"
)

func TestInitCommand_CreatesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, initCommand(false))

	cfg, err := config.Load(config.ConfigFileName)
	require.NoError(t, err, "generated config must round-trip through the loader")
	assert.Equal(t, "reports/metrics.json", cfg.Input)
	assert.Equal(t, "reports/dashboard.html", cfg.Output)
	assert.NoError(t, config.Validate(cfg))
}

func TestInitCommand_RefusesToOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("input: mine.json\n"), 0o644))

	err := initCommand(false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	data, readErr := os.ReadFile(config.ConfigFileName)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "mine.json", "existing config stays untouched")
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("input: mine.json\n"), 0o644))

	require.NoError(t, initCommand(true))

	cfg, err := config.Load(config.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, "reports/metrics.json", cfg.Input)
}
