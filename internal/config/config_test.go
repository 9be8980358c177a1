package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 90, cfg.Query.DefaultAgeDays)
	assert.Equal(t, "/usr/bin/osascript", cfg.AppleScript.Binary)
	assert.Equal(t, 60, cfg.AppleScript.TimeoutSeconds)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("MONEYMONEY_LOG_LEVEL", "debug")
	t.Setenv("MONEYMONEY_QUERY_DEFAULT_AGE_DAYS", "30")
	t.Setenv("MONEYMONEY_APPLESCRIPT_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Query.DefaultAgeDays)
	assert.Equal(t, 5, cfg.AppleScript.TimeoutSeconds)
}

func TestConfigureLogging(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	logger := ConfigureLogging(cfg)
	assert.NotNil(t, logger)
}
