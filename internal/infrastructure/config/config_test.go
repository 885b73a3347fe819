package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "text", cfg.Quote.Output)
	assert.Equal(t, "€", cfg.Quote.Currency)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CINEPASS_QUOTE_OUTPUT", "json")
	t.Setenv("CINEPASS_LOGGER_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Quote.Output)
	assert.Equal(t, "debug", cfg.Logger.Level)
}
