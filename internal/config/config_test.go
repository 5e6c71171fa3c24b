package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.BusinessStartHour != 9 || cfg.BusinessEndHour != 17 {
		t.Errorf("expected 9-17 business hours, got %d-%d", cfg.BusinessStartHour, cfg.BusinessEndHour)
	}
	if cfg.SlotMinutes != 60 {
		t.Errorf("expected 60 minute slots, got %d", cfg.SlotMinutes)
	}
	if cfg.ChatTimeout != 8*time.Second {
		t.Errorf("expected 8s chat timeout, got %s", cfg.ChatTimeout)
	}
	if cfg.CalendarID != "primary" {
		t.Errorf("expected primary calendar, got %s", cfg.CalendarID)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SLOT_MINUTES", "30")
	t.Setenv("CHAT_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://codebridge.tech, https://www.codebridge.tech")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Port)
	}
	if cfg.SlotMinutes != 30 {
		t.Errorf("expected 30 minute slots, got %d", cfg.SlotMinutes)
	}
	if cfg.ChatTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.ChatTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://codebridge.tech" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SLOT_MINUTES", "not-a-number")
	t.Setenv("CHAT_TIMEOUT", "soon")

	cfg := Load()

	if cfg.SlotMinutes != 60 {
		t.Errorf("expected fallback 60, got %d", cfg.SlotMinutes)
	}
	if cfg.ChatTimeout != 8*time.Second {
		t.Errorf("expected fallback 8s, got %s", cfg.ChatTimeout)
	}
}
