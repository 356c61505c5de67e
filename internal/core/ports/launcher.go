package ports

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
)

//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks

// Launcher starts servers and connects to them.
type Launcher interface {
	// LaunchEngine starts an engine and returns a connection to it. A nil
	// via starts the process locally or over a remote shell; otherwise via
	// starts it.
	LaunchEngine(ctx context.Context, req domain.LaunchRequest, via ProcessLauncher) (EngineProxy, error)

	// LaunchMetaData starts a metadata server and returns a connection to it.
	LaunchMetaData(ctx context.Context, req domain.LaunchRequest) (MetaDataProxy, error)

	// ConnectEngine connects to an engine that is already listening at addr.
	ConnectEngine(ctx context.Context, addr, securityKey string) (EngineProxy, error)
}

// LauncherProvider returns a process launcher living on a remote host.
type LauncherProvider interface {
	// Launcher returns a launcher that starts processes on host.
	Launcher(ctx context.Context, host string, profile domain.LaunchProfile) (ProcessLauncher, error)
}
