package profiles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/adapters/profiles"
	"go.trai.ch/visit/internal/core/domain"
)

func TestFirstChooser(t *testing.T) {
	candidates := []domain.LaunchProfile{{Name: "serial", Host: "hpc"}, {Name: "batch", Host: "hpc"}}

	p, err := profiles.FirstChooser{}.Choose(context.Background(), "hpc", candidates)
	require.NoError(t, err)
	assert.Equal(t, "serial", p.Name)

	p, err = profiles.FirstChooser{Preferred: "batch"}.Choose(context.Background(), "hpc", candidates)
	require.NoError(t, err)
	assert.Equal(t, "batch", p.Name)

	_, err = profiles.FirstChooser{}.Choose(context.Background(), "hpc", nil)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = profiles.FirstChooser{}.Choose(ctx, "hpc", candidates)
	assert.ErrorIs(t, err, domain.ErrCancelledConnect)
}
