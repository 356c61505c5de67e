package ports

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
)

//go:generate mockgen -source=parallel.go -destination=mocks/mock_parallel.go -package=mocks

// HistogramSource produces joint histograms from the data behind a pipeline.
type HistogramSource interface {
	// Histogram returns a populated histogram, or an error wrapping
	// domain.ErrHistogramUnavailable when the source cannot produce it.
	Histogram(ctx context.Context, req domain.HistogramRequest) (*domain.Histogram2D, error)
}

// Communicator exchanges data between the ranks of a parallel engine.
type Communicator interface {
	// Rank returns the rank of this process.
	Rank() int

	// Size returns the number of ranks.
	Size() int

	// AllGather returns every rank's payload, indexed by rank.
	AllGather(ctx context.Context, payload []byte) ([][]byte, error)

	// SumInt64 returns the element-wise sum of values over all ranks.
	SumInt64(ctx context.Context, values []int64) ([]int64, error)

	// Send delivers payload to rank to.
	Send(ctx context.Context, to int, payload []byte) error

	// Recv waits for the next payload from rank from.
	Recv(ctx context.Context, from int) ([]byte, error)
}

// SpatialTree exposes the leaf bounding boxes of a spatial interval tree.
type SpatialTree interface {
	// LeafCount returns the number of leaves (domains).
	LeafCount() int

	// LeafExtents returns xmin, xmax, ymin, ymax, zmin, zmax of leaf i.
	LeafExtents(i int) [6]float64
}
