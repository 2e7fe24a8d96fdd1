package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

// setDBPath keeps Load from creating a data directory in the repo.
func setDBPath(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setDBPath(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
	if cfg.EmbedChunkSize != 5 {
		t.Errorf("EmbedChunkSize = %d, want 5", cfg.EmbedChunkSize)
	}
	if cfg.ChatTopK != 3 {
		t.Errorf("ChatTopK = %d, want 3", cfg.ChatTopK)
	}
	if cfg.ProviderTimeout != 30*time.Second {
		t.Errorf("ProviderTimeout = %v, want 30s", cfg.ProviderTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setDBPath(t)
	t.Setenv("API_PORT", "8088")
	t.Setenv("EMBED_CHUNK_SIZE", "10")
	t.Setenv("CHAT_TOP_K", "7")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LLM_MODEL", "some-model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIPort != "8088" {
		t.Errorf("APIPort = %q, want 8088", cfg.APIPort)
	}
	if cfg.EmbedChunkSize != 10 {
		t.Errorf("EmbedChunkSize = %d, want 10", cfg.EmbedChunkSize)
	}
	if cfg.ChatTopK != 7 {
		t.Errorf("ChatTopK = %d, want 7", cfg.ChatTopK)
	}
	if cfg.ProviderTimeout != 5*time.Second {
		t.Errorf("ProviderTimeout = %v, want 5s", cfg.ProviderTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.LLMModelName != "some-model" {
		t.Errorf("LLMModelName = %q, want some-model", cfg.LLMModelName)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric chunk size", key: "EMBED_CHUNK_SIZE", value: "five"},
		{name: "zero chunk size", key: "EMBED_CHUNK_SIZE", value: "0"},
		{name: "negative top k", key: "CHAT_TOP_K", value: "-1"},
		{name: "zero timeout", key: "PROVIDER_TIMEOUT_SECONDS", value: "0"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setDBPath(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s error = nil, want error", tt.key, tt.value)
			}
		})
	}
}
