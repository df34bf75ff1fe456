package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "practicum-token")
	t.Setenv("TELEGRAM_TOKEN", "telegram-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456789")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.TelegramChatID != 123456789 {
		t.Errorf("TelegramChatID = %d, want 123456789", cfg.TelegramChatID)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want default endpoint", cfg.Endpoint)
	}
	if cfg.PollInterval != 600*time.Second {
		t.Errorf("PollInterval = %s, want 600s", cfg.PollInterval)
	}
	if cfg.AntiSpamInterval != 10*time.Second {
		t.Errorf("AntiSpamInterval = %s, want 10s", cfg.AntiSpamInterval)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %s, want 30s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want \"info\"", cfg.LogLevel)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want \"development\"", cfg.Environment)
	}
}

func TestLoad_MissingPracticumToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PRACTICUM_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Error("Load() should return error when PRACTICUM_TOKEN is empty")
	}
}

func TestLoad_MissingTelegramToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Error("Load() should return error when TELEGRAM_TOKEN is empty")
	}
}

func TestLoad_MissingChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "")

	if _, err := Load(); err == nil {
		t.Error("Load() should return error when TELEGRAM_CHAT_ID is empty")
	}
}

func TestLoad_InvalidChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load() should return error when TELEGRAM_CHAT_ID is not an integer")
	}
}

func TestLoad_CustomIntervals(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "5m")
	t.Setenv("ANTISPAM_INTERVAL", "2s")
	t.Setenv("HTTP_TIMEOUT", "15s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Errorf("PollInterval = %s, want 5m", cfg.PollInterval)
	}
	if cfg.AntiSpamInterval != 2*time.Second {
		t.Errorf("AntiSpamInterval = %s, want 2s", cfg.AntiSpamInterval)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %s, want 15s", cfg.HTTPTimeout)
	}
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Error("Load() should return error when POLL_INTERVAL is not a duration")
	}
}

func TestLoad_NegativeInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANTISPAM_INTERVAL", "-10s")

	if _, err := Load(); err == nil {
		t.Error("Load() should return error when ANTISPAM_INTERVAL is negative")
	}
}
