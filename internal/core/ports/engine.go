// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
)

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// ProcessLauncher starts processes on the machine that hosts it.
type ProcessLauncher interface {
	// LaunchProcess starts a process described by req.
	LaunchProcess(ctx context.Context, req domain.ProcessLaunchRequest) error
}

// EngineService is the set of calls a compute engine answers.
type EngineService interface {
	ProcessLauncher

	// SendKeepAlive checks that the engine is alive.
	SendKeepAlive(ctx context.Context) error

	// GetEngineProperties returns the properties of the running engine.
	GetEngineProperties(ctx context.Context) (domain.EngineProperties, error)

	// SetGlobalSettings replaces the engine-wide settings.
	SetGlobalSettings(ctx context.Context, settings domain.GlobalSettings) error

	// OpenDatabase opens a database and starts a new network on it.
	OpenDatabase(ctx context.Context, req domain.OpenDatabaseRequest) error

	// ApplyOperator adds an operator to the network being built.
	ApplyOperator(ctx context.Context, req domain.ApplyOperatorRequest) error

	// MakePlot finishes the network being built and returns its id.
	MakePlot(ctx context.Context, req domain.MakePlotRequest) (int, error)

	// Execute runs a network.
	Execute(ctx context.Context, networkID int) (domain.ExecuteResult, error)

	// Render renders networks from a camera.
	Render(ctx context.Context, req domain.RenderRequest) (domain.RenderResult, error)

	// Pick returns values at one element of a network.
	Pick(ctx context.Context, req domain.PickRequest) (domain.PickResult, error)

	// Query runs a named query against a network.
	Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResult, error)

	// ReleaseData frees the data held by a network.
	ReleaseData(ctx context.Context, networkID int) error

	// ClearCache drops cached data for a file, or for every file.
	ClearCache(ctx context.Context, req domain.ClearCacheRequest) error

	// Interrupt asks a running computation to stop. The engine checks the
	// request cooperatively.
	Interrupt(ctx context.Context) error
}

// EngineProxy is a connection to one engine.
type EngineProxy interface {
	EngineService

	// Close releases the connection.
	Close() error
}
