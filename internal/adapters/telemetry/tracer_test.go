package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/visit/internal/adapters/telemetry"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = telemetry.NoOpTracer{}
	var _ ports.Span = telemetry.NoOpSpan{}
	var _ ports.Metrics = (*telemetry.Metrics)(nil)
	var _ ports.Progress = (*telemetry.Progress)(nil)
	var _ ports.Progress = telemetry.NoOpProgress{}
}

func TestOTelTracer_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", rec)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx, parent := tracer.Start(context.Background(), "CreateEngine", ports.WithAttribute("host", "hpc"))
	_, child := tracer.Start(ctx, "Execute")
	child.SetAttribute("rows", 42)
	child.RecordError(errors.New("boom"))
	child.RecordError(nil)
	_, err := child.Write([]byte("output"))
	require.NoError(t, err)
	child.End()
	parent.End()

	spans := rec.Ended()
	require.Len(t, spans, 2)

	exec, create := spans[0], spans[1]
	assert.Equal(t, "Execute", exec.Name())
	assert.Equal(t, create.SpanContext().SpanID(), exec.Parent().SpanID())
	assert.Equal(t, codes.Error, exec.Status().Code)
	assert.Equal(t, "boom", exec.Status().Description)
	assert.Contains(t, exec.Attributes(), attribute.Int("rows", 42))

	var names []string
	for _, e := range exec.Events() {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "log")

	assert.Contains(t, create.Attributes(), attribute.String("host", "hpc"))
	assert.Equal(t, codes.Unset, create.Status().Code)
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewLogBridge(log)
	tracer := telemetry.NewOTelTracer("test", bridge)

	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "Render@hpc failed after")
		assert.Contains(t, msg, "lost connection")
	})

	_, ok := tracer.Start(context.Background(), "OpenDatabase")
	ok.End()

	_, failed := tracer.Start(context.Background(), "Render", ports.WithAttribute("host", "hpc"))
	failed.RecordError(errors.New("lost connection"))
	failed.End()

	bridge.Verbose = true
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "Query took")
	})
	_, q := tracer.Start(context.Background(), "Query")
	q.End()
}

func TestNoOp(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NoOpTracer{}.Start(ctx, "x")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	span.End()

	step := telemetry.NoOpProgress{}.Start(ctx, "launch")
	_, err = step.Stdout().Write([]byte("x"))
	require.NoError(t, err)
	step.Done(nil)
	assert.NoError(t, telemetry.NoOpProgress{}.Close())
}
