package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/visit/internal/core/domain"
)

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", domain.LocalHost},
		{"localhost", domain.LocalHost},
		{"127.0.0.1", domain.LocalHost},
		{"::1", domain.LocalHost},
		{"  LocalHost ", domain.LocalHost},
		{"HPC.example.org", "hpc.example.org"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeHost(tt.in))
		})
	}
}

func TestEngineKey(t *testing.T) {
	engine := domain.NewEngineKey("127.0.0.1")
	sim := domain.NewSimulationKey("cluster", "run42")

	assert.Equal(t, domain.EngineKey{Host: domain.LocalHost}, engine)
	assert.True(t, engine.IsLocal())
	assert.False(t, engine.IsSimulation())
	assert.Equal(t, "localhost", engine.String())

	assert.True(t, sim.IsSimulation())
	assert.False(t, sim.IsLocal())
	assert.Equal(t, "cluster:run42", sim.String())
}

func TestEngineKey_Compare(t *testing.T) {
	keys := []domain.EngineKey{
		domain.NewSimulationKey("b", "y"),
		domain.NewEngineKey("b"),
		domain.NewEngineKey("a"),
		domain.NewSimulationKey("b", "x"),
	}
	slices.SortFunc(keys, domain.EngineKey.Compare)

	assert.Equal(t, []domain.EngineKey{
		{Host: "a"},
		{Host: "b"},
		{Host: "b", Simulation: "x"},
		{Host: "b", Simulation: "y"},
	}, keys)
}
