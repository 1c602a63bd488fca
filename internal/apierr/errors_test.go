package apierr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server error",
			err:  &ServerError{StatusCode: 500, Reason: "Internal Server Error"},
			want: "Server error (500): Internal Server Error",
		},
		{
			name: "client error",
			err:  &ClientError{StatusCode: 404, Reason: "Not Found"},
			want: "Client error (404): Not Found",
		},
		{
			name: "rate limit",
			err:  &RateLimitError{Endpoint: "/war"},
			want: "Rate limit exceeded (429) on /war",
		},
		{
			name: "unknown status",
			err:  &UnknownStatusError{StatusCode: 304},
			want: "Unexpected HTTP status 304",
		},
		{
			name: "unavailable endpoint",
			err:  &UnavailableEndpointError{Endpoint: "/campaigns", Reason: "Campaigns endpoint is not available"},
			want: "Campaigns endpoint is not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport", &TransportError{Endpoint: "/war", Err: errors.New("connection refused")}, "TransportError"},
		{"rate limit", &RateLimitError{Endpoint: "/war"}, "RateLimitError"},
		{"server", &ServerError{StatusCode: 503, Reason: "Service Unavailable"}, "ServerError"},
		{"client", &ClientError{StatusCode: 400, Reason: "Bad Request"}, "ClientError"},
		{"unknown status", &UnknownStatusError{StatusCode: 301}, "UnknownHTTPError"},
		{"unavailable", &UnavailableEndpointError{Endpoint: "/campaigns", Reason: "gone"}, "UnavailableEndpointError"},
		{"plain error", errors.New("boom"), "RuntimeError"},
		{"wrapped taxonomy error", fmt.Errorf("fetching: %w", &ServerError{StatusCode: 500, Reason: "x"}), "ServerError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.err); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &TransportError{Endpoint: "/planets", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "/planets") {
		t.Errorf("TransportError message should name the endpoint, got %q", err.Error())
	}
}

func TestPredicates(t *testing.T) {
	if !IsRateLimit(&RateLimitError{}) {
		t.Error("IsRateLimit should match RateLimitError")
	}
	if IsRateLimit(&ServerError{}) {
		t.Error("IsRateLimit should not match ServerError")
	}
	if !IsServerError(&ServerError{StatusCode: 502}) {
		t.Error("IsServerError should match ServerError")
	}
	if !IsClientError(&ClientError{StatusCode: 403}) {
		t.Error("IsClientError should match ClientError")
	}
	if !IsUnavailableEndpoint(&UnavailableEndpointError{}) {
		t.Error("IsUnavailableEndpoint should match UnavailableEndpointError")
	}
	if IsUnavailableEndpoint(errors.New("other")) {
		t.Error("IsUnavailableEndpoint should not match a plain error")
	}
}
