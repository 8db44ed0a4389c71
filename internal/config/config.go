package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultCardAssetURL = "https://deckofcardsapi.com/static/img"

type Config struct {
	BotToken       string
	DatabasePath   string
	CardAssetURL   string
	ShowCardImages bool
	TopLimit       int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	assetURL := strings.TrimRight(getEnv("CARD_ASSET_URL", DefaultCardAssetURL), "/")
	u, err := url.ParseRequestURI(assetURL)
	if err != nil {
		return nil, fmt.Errorf("invalid CARD_ASSET_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid CARD_ASSET_URL scheme: %s (must be http or https)", u.Scheme)
	}

	showImages := true
	if v := os.Getenv("SHOW_CARD_IMAGES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHOW_CARD_IMAGES: %w", err)
		}
		showImages = b
	}

	topLimit := 10
	if v := os.Getenv("TOP_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topLimit = n
		}
	}

	return &Config{
		BotToken:       token,
		DatabasePath:   getEnv("DATABASE_PATH", "./blackjack.db"),
		CardAssetURL:   assetURL,
		ShowCardImages: showImages,
		TopLimit:       topLimit,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
