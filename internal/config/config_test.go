package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServiceName != "llm-advisor" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.MetricsAddr() != ":9091" {
		t.Errorf("MetricsAddr = %q", cfg.MetricsAddr())
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("OpenRouterBaseURL = %q", cfg.OpenRouterBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.AuthEnabled() {
		t.Error("AuthEnabled without secret")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("AUTH_SECRET", " hunter2 ")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.AuthSecret != "hunter2" {
		t.Errorf("AuthSecret = %q, want trimmed", cfg.AuthSecret)
	}
	if !cfg.AuthEnabled() {
		t.Error("AuthEnabled = false with secret set")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want lowercased", cfg.LogLevel)
	}
}

func TestLoadInvalidBaseURL(t *testing.T) {
	t.Setenv("OPENROUTER_BASE_URL", "not a url")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid base URL")
	}
}

func TestLoadMCPDefaults(t *testing.T) {
	cfg, err := LoadMCP()
	if err != nil {
		t.Fatalf("LoadMCP failed: %v", err)
	}

	if cfg.AdvisorAPIURL != "http://localhost:3000" {
		t.Errorf("AdvisorAPIURL = %q", cfg.AdvisorAPIURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadMCPInvalidURL(t *testing.T) {
	t.Setenv("ADVISOR_API_URL", "::nope")

	if _, err := LoadMCP(); err == nil {
		t.Fatal("expected error for invalid advisor API URL")
	}
}
