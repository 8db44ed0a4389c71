package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, k := range []string{"BOT_TOKEN", "DATABASE_PATH", "CARD_ASSET_URL", "SHOW_CARD_IMAGES", "TOP_LIMIT"} {
		t.Setenv(k, env[k])
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{"BOT_TOKEN": "token"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		BotToken:       "token",
		DatabasePath:   "./blackjack.db",
		CardAssetURL:   DefaultCardAssetURL,
		ShowCardImages: true,
		TopLimit:       10,
	}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":        "token",
		"DATABASE_PATH":    "/tmp/bj.db",
		"CARD_ASSET_URL":   "https://cards.example.com/img/",
		"SHOW_CARD_IMAGES": "false",
		"TOP_LIMIT":        "3",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bj.db", cfg.DatabasePath)
	assert.Equal(t, "https://cards.example.com/img", cfg.CardAssetURL)
	assert.False(t, cfg.ShowCardImages)
	assert.Equal(t, 3, cfg.TopLimit)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "Missing token", env: map[string]string{}},
		{name: "Bad asset scheme", env: map[string]string{"BOT_TOKEN": "t", "CARD_ASSET_URL": "ftp://cards"}},
		{name: "Bad asset url", env: map[string]string{"BOT_TOKEN": "t", "CARD_ASSET_URL": "cards"}},
		{name: "Bad image flag", env: map[string]string{"BOT_TOKEN": "t", "SHOW_CARD_IMAGES": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
