package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EXODUS_WEATHER_API_KEY", "")
	t.Setenv("EXODUS_EXPORT_DIR", "")
	t.Setenv("EXODUS_WINDOW_WIDTH", "")
	t.Setenv("EXODUS_WINDOW_HEIGHT", "")

	cfg := Load()

	if cfg.WeatherAPIKey != "" {
		t.Errorf("WeatherAPIKey = %q, want empty", cfg.WeatherAPIKey)
	}
	if cfg.ExportDir != "." {
		t.Errorf("ExportDir = %q, want working directory", cfg.ExportDir)
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Errorf("window = %dx%d, want 1280x720", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EXODUS_WEATHER_API_KEY", "abc123")
	t.Setenv("EXODUS_CONTENT_PACK", "/tmp/pack.yaml")
	t.Setenv("EXODUS_EXPORT_DIR", "/tmp/exports")
	t.Setenv("EXODUS_WINDOW_WIDTH", "1920")
	t.Setenv("EXODUS_WINDOW_HEIGHT", "1080")

	cfg := Load()

	if cfg.WeatherAPIKey != "abc123" {
		t.Errorf("WeatherAPIKey = %q", cfg.WeatherAPIKey)
	}
	if cfg.ContentPack != "/tmp/pack.yaml" {
		t.Errorf("ContentPack = %q", cfg.ContentPack)
	}
	if cfg.ExportDir != "/tmp/exports" {
		t.Errorf("ExportDir = %q", cfg.ExportDir)
	}
	if cfg.WindowWidth != 1920 || cfg.WindowHeight != 1080 {
		t.Errorf("window = %dx%d, want 1920x1080", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 42},
		{"valid", "800", 800},
		{"garbage", "wide", 42},
		{"negative", "-5", 42},
		{"zero", "0", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EXODUS_TEST_INT", tt.value)
			if got := envInt("EXODUS_TEST_INT", 42); got != tt.want {
				t.Errorf("envInt(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
