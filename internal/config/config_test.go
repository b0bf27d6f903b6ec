package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SCDC_STORE_PATH", "")
	t.Setenv("SCDC_LOG_LEVEL", "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".scdc", "store.toml"), cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SCDC_STORE_PATH", "")
	t.Setenv("SCDC_LOG_LEVEL", "")

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".scdc"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".scdc", "config.toml"), []byte(`[store]
path = "~/volunteering/sessions.toml"

[log]
level = "debug"
`), 0o600))

	v := viper.New()
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "volunteering", "sessions.toml"), cfg.StorePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, cfg.StorePath, v.GetString(StorePathKey))
}

func TestLoadEnvironmentOverridesConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".scdc"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".scdc", "config.toml"), []byte("[log]\nlevel = \"debug\"\n"), 0o600))

	override := filepath.Join(home, "elsewhere.toml")
	t.Setenv("SCDC_STORE_PATH", override)
	t.Setenv("SCDC_LOG_LEVEL", "warn")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, override, cfg.StorePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMalformedConfigFileFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".scdc"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".scdc", "config.toml"), []byte("[store\n"), 0o600))

	_, err := Load(viper.New())
	assert.ErrorContains(t, err, "read config file")
}
