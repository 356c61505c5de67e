package domain

import (
	"cmp"
	"strings"
)

// LocalHost is the canonical host name of the machine running the client.
const LocalHost = "localhost"

// EngineKey identifies a remote session: a compute engine on a host, or a
// running simulation on a host.
type EngineKey struct {
	Host       string
	Simulation string
}

// NewEngineKey returns the key of the compute engine on host.
func NewEngineKey(host string) EngineKey {
	return EngineKey{Host: NormalizeHost(host)}
}

// NewSimulationKey returns the key of the simulation sim running on host.
func NewSimulationKey(host, sim string) EngineKey {
	return EngineKey{Host: NormalizeHost(host), Simulation: sim}
}

// IsSimulation reports whether the key names a simulation rather than an engine.
func (k EngineKey) IsSimulation() bool {
	return k.Simulation != ""
}

// IsLocal reports whether the key names a session on the client machine.
func (k EngineKey) IsLocal() bool {
	return IsLocalHost(k.Host)
}

// Compare orders keys by host, then by simulation name.
func (k EngineKey) Compare(other EngineKey) int {
	if c := cmp.Compare(k.Host, other.Host); c != 0 {
		return c
	}
	return cmp.Compare(k.Simulation, other.Simulation)
}

func (k EngineKey) String() string {
	if k.Simulation == "" {
		return k.Host
	}
	return k.Host + ":" + k.Simulation
}

// NormalizeHost maps the empty host and loopback aliases to LocalHost.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if IsLocalHost(host) {
		return LocalHost
	}
	return host
}

// IsLocalHost reports whether host refers to the client machine.
func IsLocalHost(host string) bool {
	switch strings.ToLower(host) {
	case "", LocalHost, "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}
