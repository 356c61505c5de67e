package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/visit/internal/adapters/logger"
	"go.trai.ch/visit/internal/core/ports"
)

const (
	// TracerNodeID is the unique identifier for the tracer Graft node.
	TracerNodeID graft.ID = "adapter.telemetry.tracer"
	// MetricsNodeID is the unique identifier for the concrete metrics Graft node.
	MetricsNodeID graft.ID = "adapter.telemetry.metrics"
	// MetricsPortNodeID is the unique identifier for the metrics port Graft node.
	MetricsPortNodeID graft.ID = "adapter.telemetry.metrics_port"
	// ProgressNodeID is the unique identifier for the launch progress Graft node.
	ProgressNodeID graft.ID = "adapter.telemetry.progress"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(InstrumentationName, NewLogBridge(log)), nil
		},
	})

	graft.Register(graft.Node[*Metrics]{
		ID:        MetricsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Metrics, error) {
			return NewMetrics(), nil
		},
	})

	graft.Register(graft.Node[ports.Metrics]{
		ID:        MetricsPortNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{MetricsNodeID},
		Run: func(ctx context.Context) (ports.Metrics, error) {
			return graft.Dep[*Metrics](ctx)
		},
	})

	graft.Register(graft.Node[ports.Progress]{
		ID:        ProgressNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Progress, error) {
			return NewTapeProgress(), nil
		},
	})
}
