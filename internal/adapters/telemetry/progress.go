package telemetry

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/visit/internal/core/ports"
)

// Progress implements ports.Progress by recording one progrock vertex per
// step.
type Progress struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// NewProgress records onto w.
func NewProgress(w progrock.Writer) *Progress {
	return &Progress{w: w, rec: progrock.NewRecorder(w)}
}

// NewTapeProgress records onto an in-memory tape.
func NewTapeProgress() *Progress {
	return NewProgress(progrock.NewTape())
}

// Start begins a step. Steps with equal names are distinct vertices.
func (p *Progress) Start(_ context.Context, name string) ports.Step {
	d := digest.FromString(fmt.Sprintf("%s#%d", name, p.seq.Add(1)))
	return &step{vertex: p.rec.Vertex(d, name)}
}

// Close flushes the recording.
func (p *Progress) Close() error {
	return p.w.Close()
}

type step struct {
	vertex *progrock.VertexRecorder
}

func (s *step) Stdout() io.Writer { return s.vertex.Stdout() }

func (s *step) Done(err error) { s.vertex.Done(err) }
