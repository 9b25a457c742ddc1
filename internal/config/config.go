// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything the binary reads from the environment.
type Config struct {
	// WeatherAPIKey enables live weather risk. Empty disables the
	// integration and the journey runs with calm weather.
	WeatherAPIKey string

	// WeatherBaseURL overrides the weather endpoint, for testing.
	WeatherBaseURL string

	// ContentPack is an optional YAML file overriding event and
	// encounter tables.
	ContentPack string

	// ExportDir is where journal PDFs land. Defaults to the working
	// directory.
	ExportDir string

	// WindowWidth and WindowHeight size the game window.
	WindowWidth  int
	WindowHeight int
}

// Load reads .env if present, then the process environment. Missing
// values fall back to defaults; Load never fails on an absent .env.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		WeatherAPIKey:  os.Getenv("EXODUS_WEATHER_API_KEY"),
		WeatherBaseURL: os.Getenv("EXODUS_WEATHER_BASE_URL"),
		ContentPack:    os.Getenv("EXODUS_CONTENT_PACK"),
		ExportDir:      os.Getenv("EXODUS_EXPORT_DIR"),
		WindowWidth:    envInt("EXODUS_WINDOW_WIDTH", 1280),
		WindowHeight:   envInt("EXODUS_WINDOW_HEIGHT", 720),
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
