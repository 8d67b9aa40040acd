package config

import (
	"os"
	"strings"
)

const (
	WindowWidth  = 1024
	WindowHeight = 720

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32

	// Tracker form
	RowHeight = 22
	FormX     = 40
	FormY     = 110

	// Ambient field link stroke
	LinkWidth = 0.5

	StatsWindowDays = 30
)

// Config holds runtime settings from environment variables.
type Config struct {
	APIURL   string
	DBPath   string
	LogLevel string
	Dark     bool
}

// Load reads the SUNNAH_* environment variables, falling back to defaults.
func Load() Config {
	cfg := Config{
		APIURL:   os.Getenv("SUNNAH_API_URL"),
		DBPath:   os.Getenv("SUNNAH_DB_PATH"),
		LogLevel: os.Getenv("SUNNAH_LOG_LEVEL"),
		Dark:     true,
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "http://127.0.0.1:8000"
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.DBPath == "" {
		cfg.DBPath = "sunnah.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("SUNNAH_THEME")), "light") {
		cfg.Dark = false
	}
	return cfg
}
