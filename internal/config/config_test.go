package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SUNNAH_API_URL", "")
	t.Setenv("SUNNAH_DB_PATH", "")
	t.Setenv("SUNNAH_LOG_LEVEL", "")
	t.Setenv("SUNNAH_THEME", "")

	cfg := Load()
	if cfg.APIURL != "http://127.0.0.1:8000" {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.DBPath != "sunnah.db" {
		t.Errorf("DBPath = %q, want sunnah.db", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.Dark {
		t.Error("Dark = false, want true by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SUNNAH_API_URL", "http://tracker.local:9000/")
	t.Setenv("SUNNAH_DB_PATH", "/tmp/flags.db")
	t.Setenv("SUNNAH_LOG_LEVEL", "debug")
	t.Setenv("SUNNAH_THEME", " Light ")

	cfg := Load()
	if cfg.APIURL != "http://tracker.local:9000" {
		t.Errorf("APIURL = %q, want trailing slash trimmed", cfg.APIURL)
	}
	if cfg.DBPath != "/tmp/flags.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Dark {
		t.Error("Dark = true, want false for SUNNAH_THEME=light")
	}
}
