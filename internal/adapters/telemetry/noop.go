package telemetry

import (
	"context"
	"io"

	"go.trai.ch/visit/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// Start returns ctx and a span that records nothing.
func (NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (NoOpSpan) End() {}

// RecordError does nothing.
func (NoOpSpan) RecordError(error) {}

// SetAttribute does nothing.
func (NoOpSpan) SetAttribute(string, any) {}

// Write discards p.
func (NoOpSpan) Write(p []byte) (int, error) { return len(p), nil }

// NoOpProgress is a no-op implementation of ports.Progress.
type NoOpProgress struct{}

// Start returns a step that records nothing.
func (NoOpProgress) Start(context.Context, string) ports.Step { return noOpStep{} }

// Close does nothing.
func (NoOpProgress) Close() error { return nil }

type noOpStep struct{}

func (noOpStep) Stdout() io.Writer { return io.Discard }
func (noOpStep) Done(error)        {}
