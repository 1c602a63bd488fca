package hellhub

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HELLHUB_API_URL", "")
	t.Setenv("HELLHUB_TIMEOUT", "")
	t.Setenv("HELLHUB_USER_AGENT", "")
	t.Setenv("X_SUPER_CLIENT", "")
	t.Setenv("X_SUPER_CONTACT", "")

	cfg := LoadConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", cfg.UserAgent)
	}
	if cfg.ClientID != "" || cfg.Contact != "" {
		t.Error("client identification headers should default to empty")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HELLHUB_API_URL", "http://localhost:8080/api")
	t.Setenv("HELLHUB_TIMEOUT", "10s")
	t.Setenv("HELLHUB_USER_AGENT", "custom-agent/2.0")
	t.Setenv("X_SUPER_CLIENT", "hc.dataknife.ai")
	t.Setenv("X_SUPER_CONTACT", "ops@example.com")

	cfg := LoadConfig()

	if cfg.BaseURL != "http://localhost:8080/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.UserAgent != "custom-agent/2.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.ClientID != "hc.dataknife.ai" {
		t.Errorf("ClientID = %q", cfg.ClientID)
	}
	if cfg.Contact != "ops@example.com" {
		t.Errorf("Contact = %q", cfg.Contact)
	}
}

func TestLoadConfigBadTimeout(t *testing.T) {
	t.Setenv("HELLHUB_TIMEOUT", "not-a-duration")

	cfg := LoadConfig()
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default on unparseable value", cfg.Timeout)
	}

	t.Setenv("HELLHUB_TIMEOUT", "-5s")
	cfg = LoadConfig()
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default on negative value", cfg.Timeout)
	}
}
