package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, []string{"AAPL"}, cfg.DataSource.Symbols)
	assert.Equal(t, 365, cfg.DataSource.Days)
	assert.Equal(t, 20, cfg.Analysis.SMAWindow)
	assert.Equal(t, "data/watchlist.json", cfg.Watchlist.StateFile)
	assert.Equal(t, "data/trendscope.db", cfg.Database.SQLitePath)
	assert.False(t, cfg.TelegramEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
data_source:
  provider: stooq
  symbols: [msft, googl]
  days: 500
analysis:
  sma_window: 50
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("SMA_WINDOW", "30")
	t.Setenv("SYMBOLS", "tsla, nvda")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "stooq", cfg.DataSource.Provider)
	assert.Equal(t, []string{"tsla", "nvda"}, cfg.DataSource.Symbols)
	assert.Equal(t, 500, cfg.DataSource.Days)
	assert.Equal(t, 30, cfg.Analysis.SMAWindow, "env overrides yaml")
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.DataSource.Provider = "bloomberg"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Analysis.SMAWindow = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Analysis.SMAWindow = 1000
	assert.Error(t, cfg.Validate(), "window larger than fetched history")

	cfg = base()
	cfg.DataSource.Days = 1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Telegram.BotToken = "token-without-chat"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = "42"
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.TelegramEnabled())
}
