package telemetry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/zerr"
)

const metricsNamespace = "visit"

// Metrics implements ports.Metrics with Prometheus collectors on a private
// registry.
type Metrics struct {
	registry          *prometheus.Registry
	launches          *prometheus.CounterVec
	launchFailures    *prometheus.CounterVec
	retries           *prometheus.CounterVec
	keepAliveFailures *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
	sessions          *prometheus.GaugeVec
}

// NewMetrics registers the client collectors on a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		launches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "engine_launches_total",
			Help:      "Engines launched successfully.",
		}, []string{"host"}),
		launchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "launch_failures_total",
			Help:      "Server launches that failed, by reason.",
		}, []string{"host", "reason"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "call_retries_total",
			Help:      "Calls retried after a lost connection.",
		}, []string{"method"}),
		keepAliveFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "keepalive_failures_total",
			Help:      "Keep-alives that found a dead session.",
		}, []string{"host"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_lookups_total",
			Help:      "Metadata and SIL cache lookups.",
		}, []string{"kind", "result"}),
		sessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_active",
			Help:      "Live sessions by server role.",
		}, []string{"role"}),
	}
	m.registry.MustRegister(m.launches, m.launchFailures, m.retries, m.keepAliveFailures, m.cacheLookups, m.sessions)
	return m
}

// EngineLaunched counts a successful launch on host.
func (m *Metrics) EngineLaunched(host string) { m.launches.WithLabelValues(host).Inc() }

// LaunchFailed counts a failed launch on host.
func (m *Metrics) LaunchFailed(host, reason string) {
	m.launchFailures.WithLabelValues(host, reason).Inc()
}

// CallRetried counts a retry of method.
func (m *Metrics) CallRetried(method string) { m.retries.WithLabelValues(method).Inc() }

// KeepAliveFailed counts a dead session found by a keep-alive.
func (m *Metrics) KeepAliveFailed(host string) { m.keepAliveFailures.WithLabelValues(host).Inc() }

// CacheLookup counts a cache lookup.
func (m *Metrics) CacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(kind, result).Inc()
}

// SessionsActive sets the number of live sessions of role.
func (m *Metrics) SessionsActive(role string, n int) {
	m.sessions.WithLabelValues(role).Set(float64(n))
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the collectors in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes Handler on /metrics of ln until ctx is done.
func (m *Metrics) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.Wrap(err, "metrics server failed")
	}
	return nil
}
