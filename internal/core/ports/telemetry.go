package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = map[string]any{}
		}
		c.Attributes[key] = value
	}
}

// Metrics records counters and gauges about sessions and caches.
type Metrics interface {
	// EngineLaunched counts a successful launch on host.
	EngineLaunched(host string)
	// LaunchFailed counts a failed launch on host.
	LaunchFailed(host, reason string)
	// CallRetried counts a retry of method after a lost connection.
	CallRetried(method string)
	// KeepAliveFailed counts a keep-alive that found a dead session.
	KeepAliveFailed(host string)
	// CacheLookup counts a cache lookup of kind ("metadata" or "sil").
	CacheLookup(kind string, hit bool)
	// SessionsActive sets the number of live sessions of role.
	SessionsActive(role string, n int)
}

// Progress records long-running steps such as launches.
type Progress interface {
	// Start begins a step named name.
	Start(ctx context.Context, name string) Step
	// Close flushes the recording.
	Close() error
}

// Step is one recorded unit of progress.
type Step interface {
	// Stdout returns a writer for output of the step.
	Stdout() io.Writer
	// Done completes the step, failed when err is non-nil.
	Done(err error)
}
