// Package notifier reports session events through the logger.
package notifier

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Notifier implements ports.Notifier. It remembers the last status of each
// session and the last reported session list.
type Notifier struct {
	logger ports.Logger

	mu          sync.Mutex
	status      map[domain.EngineKey]string
	sessions    []domain.EngineKey
	invalidated map[domain.EngineKey]int
}

// New returns a notifier writing to logger.
func New(logger ports.Logger) *Notifier {
	return &Notifier{
		logger:      logger,
		status:      make(map[domain.EngineKey]string),
		invalidated: make(map[domain.EngineKey]int),
	}
}

// Message logs text at level. Errors are logged through the error chain
// formatter.
func (n *Notifier) Message(level domain.LogLevel, text string) {
	switch {
	case level >= domain.LogLevelError:
		n.logger.Error(zerr.New(text))
	case level >= domain.LogLevelWarn:
		n.logger.Warn(text)
	default:
		n.logger.Info(text)
	}
}

// Status records and logs the progress of a session.
func (n *Notifier) Status(key domain.EngineKey, text string) {
	n.mu.Lock()
	changed := n.status[key] != text
	n.status[key] = text
	n.mu.Unlock()
	if changed {
		n.logger.Info(fmt.Sprintf("[%s] %s", key, text))
	}
}

// ClearStatus forgets the progress of a session.
func (n *Notifier) ClearStatus(key domain.EngineKey) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.status, key)
}

// InvalidateNetworks counts invalidations of a session's networks.
func (n *Notifier) InvalidateNetworks(key domain.EngineKey) {
	n.mu.Lock()
	n.invalidated[key]++
	n.mu.Unlock()
	n.logger.Warn(fmt.Sprintf("plots on %s must be regenerated", key))
}

// EngineListChanged records and logs the current sessions.
func (n *Notifier) EngineListChanged(keys []domain.EngineKey) {
	n.mu.Lock()
	n.sessions = slices.Clone(keys)
	n.mu.Unlock()

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	if len(names) == 0 {
		n.logger.Info("no engines running")
		return
	}
	n.logger.Info("engines: " + strings.Join(names, ", "))
}

// Statuses returns the current status of every session.
func (n *Notifier) Statuses() map[domain.EngineKey]string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return maps.Clone(n.status)
}

// Sessions returns the last reported session list.
func (n *Notifier) Sessions() []domain.EngineKey {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.sessions)
}

// Invalidations returns how often the networks of key were invalidated.
func (n *Notifier) Invalidations(key domain.EngineKey) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.invalidated[key]
}
