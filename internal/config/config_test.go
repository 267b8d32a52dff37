package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.DefaultTableSize)
	assert.Equal(t, "1/2", cfg.DefaultBlind)
	assert.Equal(t, 600, cfg.AutoAdvanceMs)
}

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
default_table_size = 9
default_blind      = "2/5"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.DefaultTableSize)
	assert.Equal(t, "2/5", cfg.DefaultBlind)
	assert.Equal(t, 600, cfg.AutoAdvanceMs, "unset field keeps default")
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `default_table_size = 12`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `default_blind = "3/7"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `this is not hcl {{{`))
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	t.Parallel()

	cfg := &Config{DataDir: "/tmp/handnotes"}
	assert.Equal(t, filepath.Join("/tmp/handnotes", "handnotes.db"), cfg.DatabasePath())
}
