// Package fileserver manages the metadata servers of a client: one per host,
// browsing their file systems and caching the metadata and SILs they read.
package fileserver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/engine/mdcache"
	"go.trai.ch/visit/internal/engine/sessions"
	"go.trai.ch/zerr"
)

// RecentPathLimit is the number of recent directories kept per host.
const RecentPathLimit = 10

// Deps are the collaborators of a List.
type Deps struct {
	Launcher ports.Launcher
	Notifier ports.Notifier
	Logger   ports.Logger
	Tracer   ports.Tracer
	Metrics  ports.Metrics
}

// List is the set of metadata servers of a client.
type List struct {
	engine   domain.EngineConfig
	deps     Deps
	registry *sessions.Registry[ports.MetaDataProxy]
	metadata *mdcache.Cache[domain.Metadata]
	sils     *mdcache.Cache[domain.SIL]

	mu           sync.Mutex
	settings     domain.FileServerSettings
	arguments    []string
	fingerprints map[string]uint64
}

// New returns a list configured by cfg.
func New(cfg *domain.Config, deps Deps) (*List, error) {
	md, err := mdcache.New[domain.Metadata]("metadata", cfg.Cache.MetaDataSize, (*domain.Metadata).Clone, deps.Metrics)
	if err != nil {
		return nil, err
	}
	sils, err := mdcache.New[domain.SIL]("sil", cfg.Cache.SILSize, (*domain.SIL).Clone, deps.Metrics)
	if err != nil {
		return nil, err
	}
	md.TreatAllAsTimeVarying(cfg.Engine.TreatAllDatabasesAsTimeVarying)
	sils.TreatAllAsTimeVarying(cfg.Engine.TreatAllDatabasesAsTimeVarying)

	return &List{
		engine:       cfg.Engine,
		deps:         deps,
		registry:     sessions.NewRegistry[ports.MetaDataProxy](),
		metadata:     md,
		sils:         sils,
		settings:     cfg.FileServer.Clone(),
		fingerprints: make(map[string]uint64),
	}, nil
}

// Settings returns the persisted state of the list.
func (l *List) Settings() domain.FileServerSettings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings.Clone()
}

// ApplySettings replaces the persisted state of the list.
func (l *List) ApplySettings(s domain.FileServerSettings) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings = s.Clone()
	l.settings.Host = domain.NormalizeHost(l.settings.Host)
}

// SetHost selects the host whose files are listed.
func (l *List) SetHost(host string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings.Host = domain.NormalizeHost(host)
}

// SetFilter sets the file name filter of listings.
func (l *List) SetFilter(filter string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings.Filter = filter
}

// AddArguments appends arguments handed to every server started afterwards.
func (l *List) AddArguments(args ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.arguments = append(l.arguments, args...)
}

// Hosts returns the hosts with a running server.
func (l *List) Hosts() []string {
	keys := l.registry.Keys()
	hosts := make([]string, len(keys))
	for i, k := range keys {
		hosts[i] = k.Host
	}
	return hosts
}

// HasServer reports whether host has a running server.
func (l *List) HasServer(host string) bool {
	return l.registry.Exists(domain.NewEngineKey(host))
}

// StartServer starts the metadata server of host unless it runs already.
func (l *List) StartServer(ctx context.Context, host string) (err error) {
	key := domain.NewEngineKey(host)
	if l.registry.Exists(key) {
		return nil
	}

	ctx, span := l.deps.Tracer.Start(ctx, "StartServer", ports.WithAttribute("host", key.Host))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	if err := l.registry.BeginLaunch(key); err != nil {
		return err
	}

	l.mu.Lock()
	args := append([]string(nil), l.arguments...)
	l.mu.Unlock()

	l.deps.Notifier.Status(key, "Starting metadata server on "+key.Host)
	defer l.deps.Notifier.ClearStatus(key)

	proxy, err := l.deps.Launcher.LaunchMetaData(ctx, domain.LaunchRequest{
		Key:       key,
		Profile:   domain.DefaultLaunchProfile(key.Host),
		Role:      domain.RoleMetaData,
		Arguments: append(append([]string(nil), l.engine.Arguments...), args...),
		Timeout:   l.engine.LaunchTimeout,
	})
	if err != nil {
		return l.startFailed(key, nil, err)
	}
	if err := proxy.SendKeepAlive(ctx); err != nil {
		return l.startFailed(key, proxy, err)
	}
	dir, err := proxy.GetDirectory(ctx)
	if err != nil {
		return l.startFailed(key, proxy, err)
	}

	if _, err := l.registry.Activate(key, sessions.Start[ports.MetaDataProxy]{
		Proxy:      proxy,
		Profile:    domain.DefaultLaunchProfile(key.Host),
		Properties: domain.EngineProperties{Host: key.Host, Role: domain.RoleMetaData},
		Directory:  dir,
	}); err != nil {
		return l.startFailed(key, proxy, err)
	}

	l.deps.Metrics.SessionsActive(domain.RoleMetaData, l.registry.Len())
	l.deps.Logger.Info(fmt.Sprintf("metadata server on %s started in %s", key.Host, dir))
	return nil
}

func (l *List) startFailed(key domain.EngineKey, proxy ports.MetaDataProxy, err error) error {
	if proxy != nil {
		_ = proxy.Close()
	}
	l.registry.AbortLaunch(key)
	l.deps.Metrics.LaunchFailed(key.Host, "mdserver")
	l.deps.Notifier.Message(domain.LogLevelError,
		fmt.Sprintf("The metadata server on %s could not be started: %v", key.Host, err))
	return zerr.With(zerr.Wrap(err, "failed to start metadata server"), "host", key.Host)
}

// CloseServer shuts down the server of host.
func (l *List) CloseServer(host string) error {
	err := l.registry.Close(domain.NewEngineKey(host))
	l.deps.Metrics.SessionsActive(domain.RoleMetaData, l.registry.Len())
	return err
}

// CloseAllServers shuts down every server.
func (l *List) CloseAllServers() error {
	var errs error
	for _, host := range l.Hosts() {
		errs = errors.Join(errs, l.CloseServer(host))
	}
	return errs
}

// SendKeepAlives pings every server and removes those that do not answer.
// It returns the hosts removed.
func (l *List) SendKeepAlives(ctx context.Context) []string {
	var failed []domain.EngineKey
	for _, key := range l.registry.Keys() {
		s, ok := l.registry.Get(key)
		if !ok {
			continue
		}
		err := s.Do(ctx, func(ctx context.Context, p ports.MetaDataProxy) error {
			return p.SendKeepAlive(ctx)
		})
		if err != nil && ctx.Err() == nil {
			l.deps.Metrics.KeepAliveFailed(key.Host)
			l.registry.MarkFailed(key)
			failed = append(failed, key)
		}
	}

	hosts := make([]string, 0, len(failed))
	for _, key := range failed {
		l.removeFailed(key)
		hosts = append(hosts, key.Host)
	}
	return hosts
}

// removeFailed drops the server of key after it stopped responding.
func (l *List) removeFailed(key domain.EngineKey) {
	s, ok := l.registry.Remove(key)
	if !ok {
		return
	}
	if err := s.Proxy().Close(); err != nil {
		l.deps.Logger.Warn(fmt.Sprintf("closing failed metadata server on %s: %v", key.Host, err))
	}
	l.deps.Notifier.Message(domain.LogLevelWarn,
		fmt.Sprintf("The metadata server on %s exited unexpectedly.", key.Host))
	l.deps.Metrics.SessionsActive(domain.RoleMetaData, l.registry.Len())
}

// withServer runs fn on the server of host, starting it first if needed.
// A lost connection restarts the server and retries within the configured
// restart count.
func (l *List) withServer(ctx context.Context, host, method string, fn func(ctx context.Context, p ports.MetaDataProxy) error) (err error) {
	key := domain.NewEngineKey(host)
	ctx, span := l.deps.Tracer.Start(ctx, method, ports.WithAttribute("host", key.Host))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	if err := l.StartServer(ctx, key.Host); err != nil {
		return err
	}

	policy := sessions.RestartPolicy{NumRestarts: l.engine.NumRestarts, RetryDelay: l.engine.RetryDelay}
	err = policy.Run(ctx,
		func(ctx context.Context) error {
			s, ok := l.registry.Get(key)
			if !ok {
				return zerr.With(zerr.Wrap(domain.ErrNoMetaDataServer, method), "host", key.Host)
			}
			return s.Do(ctx, fn)
		},
		func(ctx context.Context, attempt int) error {
			l.deps.Metrics.CallRetried(method)
			l.deps.Logger.Warn(fmt.Sprintf("lost connection to metadata server on %s during %s, restarting (attempt %d)",
				key.Host, method, attempt))
			if err := l.registry.Close(key); err != nil {
				l.deps.Logger.Warn(fmt.Sprintf("closing metadata server on %s before restart: %v", key.Host, err))
			}
			return l.StartServer(ctx, key.Host)
		},
	)
	if err != nil && domain.IsConnectionLoss(err) {
		l.removeFailed(key)
	}
	return err
}

// Launcher returns a process launcher that starts processes through the
// metadata server of host, so they share its batch job.
func (l *List) Launcher(ctx context.Context, host string) (ports.ProcessLauncher, error) {
	if err := l.StartServer(ctx, host); err != nil {
		return nil, err
	}
	return serverLauncher{list: l, host: host}, nil
}

type serverLauncher struct {
	list *List
	host string
}

func (s serverLauncher) LaunchProcess(ctx context.Context, req domain.ProcessLaunchRequest) error {
	return s.list.withServer(ctx, s.host, "LaunchProcess", func(ctx context.Context, p ports.MetaDataProxy) error {
		return p.LaunchProcess(ctx, req)
	})
}
