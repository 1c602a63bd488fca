// Package hellhub provides the HTTP client for the HellHub Collective
// Helldivers 2 API. The client has an explicit Open/Close lifecycle:
// operations are only valid between Open and Close, and a client that was
// never opened fails with apierr.ErrNotConnected rather than connecting
// on demand. Payloads are passed through as opaque JSON; this system
// relays game data, it does not interpret it.
package hellhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dataknife/high-command-mcp-server/internal/apierr"
	"github.com/dataknife/high-command-mcp-server/metrics"
)

// Client provides access to the HellHub Collective API.
type Client struct {
	config *Config
	logger *slog.Logger

	// httpClient is non-nil only while the client is open.
	httpClient *http.Client
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a closed client. Call Open before issuing requests.
func NewClient(config *Config, opts ...ClientOption) *Client {
	if config == nil {
		config = LoadConfig()
	}
	c := &Client{
		config: config,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open transitions the client from Closed to Open. Opening an already
// open client is a wiring bug.
func (c *Client) Open() error {
	if c.httpClient != nil {
		return fmt.Errorf("hellhub: client already open")
	}
	c.httpClient = &http.Client{
		Timeout:   c.config.Timeout,
		Transport: newTransport(),
	}
	return nil
}

// Close transitions the client back to Closed, releasing idle
// connections. Closing a closed client is a no-op so Close is safe to
// defer on every exit path.
func (c *Client) Close() {
	if c.httpClient == nil {
		return
	}
	c.httpClient.CloseIdleConnections()
	c.httpClient = nil
}

// WarStatus fetches the current galactic war status.
func (c *Client) WarStatus(ctx context.Context) (json.RawMessage, error) {
	c.logger.Info("Fetching war status")
	return c.get(ctx, "/war")
}

// Planets fetches the planet list.
func (c *Client) Planets(ctx context.Context) (json.RawMessage, error) {
	c.logger.Info("Fetching planets")
	return c.get(ctx, "/planets")
}

// PlanetStatus fetches a single planet by index.
func (c *Client) PlanetStatus(ctx context.Context, planetIndex int) (json.RawMessage, error) {
	c.logger.Info("Fetching planet status", "planet_index", planetIndex)
	return c.get(ctx, fmt.Sprintf("/planets/%d", planetIndex))
}

// Statistics fetches global game statistics.
func (c *Client) Statistics(ctx context.Context) (json.RawMessage, error) {
	c.logger.Info("Fetching statistics")
	return c.get(ctx, "/statistics")
}

// CampaignInfo always fails: the HellHub API does not expose a campaigns
// resource. The failure is a static capability gap, reported without any
// network activity.
func (c *Client) CampaignInfo(ctx context.Context) (json.RawMessage, error) {
	if c.httpClient == nil {
		return nil, apierr.ErrNotConnected
	}
	c.logger.Info("Campaign info not available in HellHub API")
	return nil, &apierr.UnavailableEndpointError{
		Endpoint: "/campaigns",
		Reason:   "Campaigns endpoint is not available in the HellHub Collective API",
	}
}

// Biomes fetches the biome list.
func (c *Client) Biomes(ctx context.Context) (json.RawMessage, error) {
	c.logger.Info("Fetching biomes")
	return c.get(ctx, "/biomes")
}

// Factions fetches the faction list.
func (c *Client) Factions(ctx context.Context) (json.RawMessage, error) {
	c.logger.Info("Fetching factions")
	return c.get(ctx, "/factions")
}

// get performs a single GET against the API and classifies the outcome.
// No retries: one failed attempt is terminal for the invocation.
func (c *Client) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	if c.httpClient == nil {
		return nil, apierr.ErrNotConnected
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if c.config.ClientID != "" {
		req.Header.Set("X-Super-Client", c.config.ClientID)
	}
	if c.config.Contact != "" {
		req.Header.Set("X-Super-Contact", c.config.Contact)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		terr := &apierr.TransportError{Endpoint: endpoint, Err: err}
		c.logger.Error("API request failed", "endpoint", endpoint, "error", err)
		metrics.RecordAPICall(endpoint, time.Since(start).Seconds(), false, terr.Kind())
		return nil, terr
	}

	body, err := readAndClose(resp)
	if err != nil {
		terr := &apierr.TransportError{Endpoint: endpoint, Err: err}
		metrics.RecordAPICall(endpoint, time.Since(start).Seconds(), false, terr.Kind())
		return nil, terr
	}

	if err := classifyStatus(endpoint, resp.StatusCode, body); err != nil {
		c.logger.Error("API returned error status",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"error", err)
		metrics.RecordAPICall(endpoint, time.Since(start).Seconds(), false, apierr.Label(err))
		return nil, err
	}

	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.RecordAPICall(endpoint, time.Since(start).Seconds(), false, "DecodeError")
		return nil, fmt.Errorf("decoding %s response: %w", endpoint, err)
	}

	metrics.RecordAPICall(endpoint, time.Since(start).Seconds(), true, "")
	return payload, nil
}

// classifyStatus maps a status code to the error taxonomy. 2xx is
// success; everything else gets a categorized failure.
func classifyStatus(endpoint string, status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusTooManyRequests:
		return &apierr.RateLimitError{Endpoint: endpoint}
	case status >= 500 && status < 600:
		return &apierr.ServerError{StatusCode: status, Reason: statusReason(status, body)}
	case status >= 400 && status < 500:
		return &apierr.ClientError{StatusCode: status, Reason: statusReason(status, body)}
	default:
		return &apierr.UnknownStatusError{StatusCode: status}
	}
}

// statusReason extracts a human-readable reason from the response body,
// falling back to the standard status text.
func statusReason(status int, body []byte) string {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		if apiErr.Message != "" {
			return apiErr.Error + ": " + apiErr.Message
		}
		return apiErr.Error
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		return text
	}
	return http.StatusText(status)
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// newTransport creates a transport with connection reuse within a
// single open/close window.
func newTransport() http.RoundTripper {
	return &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}
}
