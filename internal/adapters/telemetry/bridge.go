package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/visit/internal/core/ports"
)

// LogBridge is a span processor that reports finished spans to a logger:
// failures always, successes only when Verbose is set.
type LogBridge struct {
	logger  ports.Logger
	Verbose bool
}

// NewLogBridge returns a bridge writing to logger.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs s.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	took := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	label := s.Name()
	for _, kv := range s.Attributes() {
		if kv.Key == "host" {
			label += "@" + kv.Value.Emit()
		}
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		b.logger.Warn(fmt.Sprintf("%s failed after %s: %s", label, took, desc))
		return
	}
	if b.Verbose {
		b.logger.Info(fmt.Sprintf("%s took %s", label, took))
	}
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(context.Context) error { return nil }

// Shutdown does nothing.
func (b *LogBridge) Shutdown(context.Context) error { return nil }
