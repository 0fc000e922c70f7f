package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "USE_MEMORY_STORE", "DB_NAME", "DB_HOST", "REPLY_DELAY_MS",
		"SESSION_TTL_MINUTES", "INSTANCE_CONNECTION_NAME", "ENVIRONMENT", "TWILIO_ACCOUNT_SID",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DBName != "eduguide" || cfg.DBHost != "localhost" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.UseMemoryStore {
		t.Fatalf("memory store should be off by default")
	}
	if cfg.ReplyDelay != 500*time.Millisecond || cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected timings: %v %v", cfg.ReplyDelay, cfg.SessionTTL)
	}
	if cfg.TwilioConfigured() || cfg.IsProduction() {
		t.Fatalf("bare environment should be unconfigured development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("REPLY_DELAY_MS", "0")
	t.Setenv("SESSION_TTL_MINUTES", "not-a-number")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_WHATSAPP_FROM", "+14155238886")
	t.Setenv("INSTANCE_CONNECTION_NAME", "proj:region:db")

	cfg := Load()
	if cfg.Port != "9000" || !cfg.UseMemoryStore {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ReplyDelay != 0 {
		t.Fatalf("expected zero reply delay, got %v", cfg.ReplyDelay)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("invalid TTL should fall back to default, got %v", cfg.SessionTTL)
	}
	if !cfg.TwilioConfigured() || !cfg.IsProduction() {
		t.Fatalf("expected configured production: %+v", cfg)
	}
	if cfg.EnvironmentLabel() != "Production (Cloud Run)" {
		t.Fatalf("unexpected label %q", cfg.EnvironmentLabel())
	}
}
