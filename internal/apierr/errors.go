// Package apierr provides shared error types for the HellHub API client
// and the tool invocation layer. Each type carries a Kind label so the
// invocation wrapper can format failures as "{Kind}: {message}".
package apierr

import (
	"errors"
	"fmt"
)

// ErrNotConnected indicates a client operation was attempted outside an
// Open/Close lifecycle. This is a wiring bug, not a runtime condition.
var ErrNotConnected = errors.New("client not connected: call Open before issuing requests")

// Kinder is implemented by errors that belong to the failure taxonomy.
type Kinder interface {
	Kind() string
}

// Label returns the taxonomy label for err, or RuntimeError for errors
// outside the taxonomy.
func Label(err error) string {
	var k Kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return "RuntimeError"
}

// TransportError indicates a network-level failure (connection refused,
// timeout, DNS) as opposed to an HTTP status error.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Kind() string { return "TransportError" }

// RateLimitError indicates the API returned 429.
type RateLimitError struct {
	Endpoint string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Rate limit exceeded (429) on %s", e.Endpoint)
}

func (e *RateLimitError) Kind() string { return "RateLimitError" }

// ServerError indicates a 5xx response.
type ServerError struct {
	StatusCode int
	Reason     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Server error (%d): %s", e.StatusCode, e.Reason)
}

func (e *ServerError) Kind() string { return "ServerError" }

// ClientError indicates a 4xx response other than 429.
type ClientError struct {
	StatusCode int
	Reason     string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("Client error (%d): %s", e.StatusCode, e.Reason)
}

func (e *ClientError) Kind() string { return "ClientError" }

// UnknownStatusError indicates a status code outside the 2xx/4xx/5xx
// ranges the client knows how to classify.
type UnknownStatusError struct {
	StatusCode int
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("Unexpected HTTP status %d", e.StatusCode)
}

func (e *UnknownStatusError) Kind() string { return "UnknownHTTPError" }

// UnavailableEndpointError indicates a resource the upstream API does not
// provide. It is a static capability gap: no request is ever attempted.
type UnavailableEndpointError struct {
	Endpoint string
	Reason   string
}

func (e *UnavailableEndpointError) Error() string { return e.Reason }

func (e *UnavailableEndpointError) Kind() string { return "UnavailableEndpointError" }

// IsRateLimit returns true if the error is a RateLimitError.
func IsRateLimit(err error) bool {
	var e *RateLimitError
	return errors.As(err, &e)
}

// IsServerError returns true if the error is a ServerError.
func IsServerError(err error) bool {
	var e *ServerError
	return errors.As(err, &e)
}

// IsClientError returns true if the error is a ClientError.
func IsClientError(err error) bool {
	var e *ClientError
	return errors.As(err, &e)
}

// IsUnavailableEndpoint returns true if the error is an UnavailableEndpointError.
func IsUnavailableEndpoint(err error) bool {
	var e *UnavailableEndpointError
	return errors.As(err, &e)
}
