// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/visit/internal/adapters/config"
	_ "go.trai.ch/visit/internal/adapters/launcher"
	_ "go.trai.ch/visit/internal/adapters/localengine"
	_ "go.trai.ch/visit/internal/adapters/logger"
	_ "go.trai.ch/visit/internal/adapters/notifier"
	_ "go.trai.ch/visit/internal/adapters/profiles"
	_ "go.trai.ch/visit/internal/adapters/telemetry"
	_ "go.trai.ch/visit/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/visit/internal/app"
)
