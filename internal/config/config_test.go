package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected 30s request timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.AIProvider != "mock" || cfg.SpeechProvider != "mock" {
		t.Fatalf("expected mock providers by default, got ai=%q speech=%q", cfg.AIProvider, cfg.SpeechProvider)
	}
	if cfg.MaxUploadSizeMB != 20 {
		t.Fatalf("expected 20MB upload cap, got %d", cfg.MaxUploadSizeMB)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("expected 5s request timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
}
