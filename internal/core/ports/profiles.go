package ports

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
)

//go:generate mockgen -source=profiles.go -destination=mocks/mock_profiles.go -package=mocks

// ProfileChooser lets a user pick among launch profiles for a host.
type ProfileChooser interface {
	// Choose returns the selected profile. It returns domain.ErrCancelledConnect
	// when the user declines to launch.
	Choose(ctx context.Context, host string, profiles []domain.LaunchProfile) (domain.LaunchProfile, error)
}

// ProfileCache remembers the launch profile last used for each host.
type ProfileCache interface {
	// Get returns the cached profile for host. Returns nil, nil if not found.
	Get(host string) (*domain.LaunchProfile, error)

	// Put stores the profile used for host.
	Put(host string, profile domain.LaunchProfile) error

	// Clear forgets the profile of host.
	Clear(host string) error
}
