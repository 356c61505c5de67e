package ports

import "go.trai.ch/visit/internal/core/domain"

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

// Notifier surfaces session events to whatever presents them to the user.
type Notifier interface {
	// Message shows a classified, human-readable message.
	Message(level domain.LogLevel, text string)

	// Status shows progress tied to a session.
	Status(key domain.EngineKey, text string)

	// ClearStatus removes any progress shown for a session.
	ClearStatus(key domain.EngineKey)

	// InvalidateNetworks tells windows that network ids of a session are gone.
	InvalidateNetworks(key domain.EngineKey)

	// EngineListChanged reports the current set of sessions.
	EngineListChanged(keys []domain.EngineKey)
}
