package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONNSTR_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, "compact", cfg.Formatting)
	assert.Equal(t, "source", cfg.KeywordOrder)
	assert.Equal(t, 20, cfg.History.Limit)
	assert.False(t, cfg.IncludeDefaults)
}

func TestSaveAndReloadConfig(t *testing.T) {
	t.Setenv("CONNSTR_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.DefaultTarget = "jdbc"
	cfg.OutputFormat = "yaml"
	cfg.PreferShortNames = true
	require.NoError(t, SaveConfig(cfg))

	// No stray temp file left behind.
	path, err := GetConfigPath()
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "jdbc", loaded.DefaultTarget)
	assert.Equal(t, "yaml", loaded.OutputFormat)
	assert.True(t, loaded.PreferShortNames)
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONNSTR_CONFIG_DIR", dir)

	raw := `{"output_format":"xml","formatting":"fancy","keyword_order":"random","history":{"limit":-4}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, "compact", cfg.Formatting)
	assert.Equal(t, "source", cfg.KeywordOrder)
	assert.Equal(t, 20, cfg.History.Limit)
}
