// Package invoke runs tool handlers behind a uniform result envelope.
// It is the failure boundary: any error a handler returns is captured and
// categorized, never propagated. The single exception is a nil handler,
// which indicates a wiring bug and is returned to the caller immediately.
package invoke

import (
	"context"
	"errors"
	"time"

	"github.com/dataknife/high-command-mcp-server/internal/apierr"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrNilHandler is returned when Run receives a nil handler. It is a
// programming error and is never converted into an envelope.
var ErrNilHandler = errors.New("invoke: nil handler")

// Handler is a bound tool invocation: arguments are already captured, the
// context carries cancellation through to the network call.
type Handler func(ctx context.Context) (any, error)

// Metrics carries invocation timing, measured on the monotonic clock.
type Metrics struct {
	ElapsedMS float64 `json:"elapsed_ms"`
}

// Result is the uniform envelope every invocation produces. Exactly one
// of Data and Error is populated; Status says which.
type Result struct {
	Status  string   `json:"status"`
	Data    any      `json:"data"`
	Error   *string  `json:"error"`
	Metrics *Metrics `json:"metrics,omitempty"`
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool { return r.Status == StatusSuccess }

// ErrorResult builds an error envelope from a pre-formatted message. Used
// by dispatch for failures that occur before a handler runs (unknown
// tool, argument validation).
func ErrorResult(msg string) Result {
	return Result{Status: StatusError, Error: &msg}
}

// Run executes handler and wraps the outcome. Handler failures become an
// error envelope with the message formatted as "{Kind}: {message}" per
// the error taxonomy. When includeMetrics is set, elapsed time is
// attached to success and error envelopes alike.
func Run(ctx context.Context, handler Handler, includeMetrics bool) (Result, error) {
	if handler == nil {
		return Result{}, ErrNilHandler
	}

	start := time.Now()
	data, err := handler(ctx)

	var result Result
	if includeMetrics {
		result.Metrics = &Metrics{ElapsedMS: float64(time.Since(start)) / float64(time.Millisecond)}
	}

	if err != nil {
		msg := apierr.Label(err) + ": " + err.Error()
		result.Status = StatusError
		result.Error = &msg
		return result, nil
	}

	result.Status = StatusSuccess
	result.Data = data
	return result, nil
}
