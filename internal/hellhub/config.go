package hellhub

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the HellHub Collective API endpoint
	DefaultBaseURL = "https://api-hellhub-collective.koyeb.app/api"

	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this server to the API
	DefaultUserAgent = "high-command-mcp-server/1.0 (github.com/dataknife/high-command-mcp-server)"
)

// Config holds HellHub API connection settings
type Config struct {
	// BaseURL is the API root (e.g. https://api-hellhub-collective.koyeb.app/api)
	BaseURL string

	// Timeout is the fixed per-request timeout
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string

	// ClientID is sent as the X-Super-Client header when set
	ClientID string

	// Contact is sent as the X-Super-Contact header when set
	Contact string
}

// LoadConfig loads configuration from environment variables. Every
// setting has a default, so loading cannot fail.
func LoadConfig() *Config {
	baseURL := os.Getenv("HELLHUB_API_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("HELLHUB_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	userAgent := os.Getenv("HELLHUB_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
		ClientID:  os.Getenv("X_SUPER_CLIENT"),
		Contact:   os.Getenv("X_SUPER_CONTACT"),
	}
}
