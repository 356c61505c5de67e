package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/visit/internal/adapters/telemetry"
)

type statusWriter struct {
	mu     sync.Mutex
	names  map[string]string
	closed bool
}

func (w *statusWriter) WriteStatus(u *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, v := range u.Vertexes {
		w.names[v.Id] = v.Name
	}
	return nil
}

func (w *statusWriter) Close() error {
	w.closed = true
	return nil
}

func TestProgress_Steps(t *testing.T) {
	w := &statusWriter{names: map[string]string{}}
	p := telemetry.NewProgress(w)

	first := p.Start(context.Background(), "launch engine on hpc")
	_, err := first.Stdout().Write([]byte("waiting for scheduler\n"))
	require.NoError(t, err)
	first.Done(errors.New("cancelled"))

	second := p.Start(context.Background(), "launch engine on hpc")
	second.Done(nil)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)

	assert.Len(t, w.names, 2, "steps with equal names are separate vertices")
	for _, name := range w.names {
		assert.Equal(t, "launch engine on hpc", name)
	}
}
