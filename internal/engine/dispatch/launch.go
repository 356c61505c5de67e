package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/engine/sessions"
	"go.trai.ch/zerr"
)

// CreateEngine starts an engine for key with default options.
func (m *Manager) CreateEngine(ctx context.Context, key domain.EngineKey, args []string) error {
	return m.CreateEngineEx(ctx, key, EngineOptions{Arguments: args})
}

// CreateEngineEx starts an engine for key. It succeeds without doing
// anything if the engine already runs, and fails with
// domain.ErrLaunchInProgress while another launch is running.
func (m *Manager) CreateEngineEx(ctx context.Context, key domain.EngineKey, opts EngineOptions) error {
	if m.registry.Exists(key) {
		return nil
	}
	if !m.beginLaunch() {
		m.deps.Logger.Warn(fmt.Sprintf("not launching engine on %s: another launch is in progress", key))
		return zerr.With(zerr.Wrap(domain.ErrLaunchInProgress, "cannot create engine"), "key", key.String())
	}
	defer m.endLaunch()

	m.mu.Lock()
	m.restart[key] = restartArgs{opts: opts}
	m.mu.Unlock()

	return m.launch(ctx, key, opts)
}

// ConnectSim connects to a simulation listening on simHost:simPort instead
// of launching a process. The address is remembered for reconnects.
func (m *Manager) ConnectSim(ctx context.Context, key domain.EngineKey, args []string, simHost string, simPort int, simKey string) error {
	if m.registry.Exists(key) {
		return nil
	}
	if !m.beginLaunch() {
		m.deps.Logger.Warn(fmt.Sprintf("not connecting to simulation %s: another launch is in progress", key))
		return zerr.With(zerr.Wrap(domain.ErrLaunchInProgress, "cannot connect to simulation"), "key", key.String())
	}
	defer m.endLaunch()

	target := &simTarget{addr: net.JoinHostPort(simHost, strconv.Itoa(simPort)), securityKey: simKey}
	m.mu.Lock()
	m.restart[key] = restartArgs{opts: EngineOptions{Arguments: args, SkipChooser: true}, sim: target}
	m.mu.Unlock()

	return m.connect(ctx, key, target)
}

func (m *Manager) beginLaunch() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.launching {
		return false
	}
	m.launching = true
	return true
}

func (m *Manager) endLaunch() {
	m.mu.Lock()
	m.launching = false
	m.mu.Unlock()
}

// relaunch starts key again from its remembered arguments.
func (m *Manager) relaunch(ctx context.Context, key domain.EngineKey) error {
	if !m.beginLaunch() {
		return zerr.With(zerr.Wrap(domain.ErrLaunchInProgress, "cannot restart engine"), "key", key.String())
	}
	defer m.endLaunch()

	m.mu.Lock()
	args, ok := m.restart[key]
	m.mu.Unlock()

	if ok && args.sim != nil {
		return m.connect(ctx, key, args.sim)
	}
	return m.launch(ctx, key, args.opts)
}

func (m *Manager) launch(ctx context.Context, key domain.EngineKey, opts EngineOptions) (err error) {
	ctx, span := m.deps.Tracer.Start(ctx, "CreateEngine", ports.WithAttribute("key", key.String()))
	defer span.End()
	step := m.deps.Progress.Start(ctx, "launch engine on "+key.String())
	defer func() {
		step.Done(err)
		if err != nil {
			span.RecordError(err)
		}
	}()

	profile, err := m.resolveProfile(ctx, key.Host, opts.SkipChooser)
	if err != nil {
		return m.launchFailed(key, profile, nil, err)
	}
	if err := m.registry.BeginLaunch(key); err != nil {
		return err
	}

	securityKey, err := newSecurityKey()
	if err != nil {
		return m.launchFailed(key, profile, nil, err)
	}

	m.deps.Notifier.Status(key, "Launching engine on "+key.Host)
	req := domain.LaunchRequest{
		Key:           key,
		Profile:       profile,
		Role:          domain.RoleEngine,
		Arguments:     m.launchArguments(profile, opts),
		SecurityKey:   securityKey,
		Timeout:       m.cfg.LaunchTimeout,
		ReverseLaunch: opts.ReverseLaunch,
	}

	via, err := m.processLauncher(ctx, key.Host, profile)
	if err != nil {
		return m.launchFailed(key, profile, nil, err)
	}
	proxy, err := m.deps.Launcher.LaunchEngine(ctx, req, via)
	if err != nil {
		return m.launchFailed(key, profile, proxy, err)
	}
	if err := m.activate(ctx, key, profile, proxy); err != nil {
		return m.launchFailed(key, profile, proxy, err)
	}

	if err := m.deps.Profiles.Put(key.Host, profile); err != nil {
		m.deps.Logger.Warn(fmt.Sprintf("could not remember launch profile for %s: %v", key.Host, err))
	}
	return nil
}

func (m *Manager) connect(ctx context.Context, key domain.EngineKey, target *simTarget) (err error) {
	ctx, span := m.deps.Tracer.Start(ctx, "ConnectSim", ports.WithAttribute("key", key.String()))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	profile := domain.DefaultLaunchProfile(key.Host)
	if err := m.registry.BeginLaunch(key); err != nil {
		return err
	}

	m.deps.Notifier.Status(key, "Connecting to simulation "+key.String())
	proxy, err := m.deps.Launcher.ConnectEngine(ctx, target.addr, target.securityKey)
	if err != nil {
		return m.launchFailed(key, profile, proxy, err)
	}
	if err := m.activate(ctx, key, profile, proxy); err != nil {
		return m.launchFailed(key, profile, proxy, err)
	}
	return nil
}

// activate finishes a launch: the new engine must answer, report its
// properties and accept the global settings before it is registered.
func (m *Manager) activate(ctx context.Context, key domain.EngineKey, profile domain.LaunchProfile, proxy ports.EngineProxy) error {
	if err := proxy.SendKeepAlive(ctx); err != nil {
		return err
	}
	props, err := proxy.GetEngineProperties(ctx)
	if err != nil {
		return err
	}
	if err := proxy.SetGlobalSettings(ctx, m.GlobalSettings()); err != nil {
		return err
	}

	if _, err := m.registry.Activate(key, sessions.Start[ports.EngineProxy]{
		Proxy:      proxy,
		Profile:    profile,
		Properties: props,
	}); err != nil {
		return err
	}

	m.deps.Metrics.EngineLaunched(key.Host)
	m.deps.Notifier.ClearStatus(key)
	m.deps.Logger.Info(fmt.Sprintf("engine on %s running (pid %d, %d processors)", key, props.PID, props.NumProcessors))
	m.sessionsChanged()
	return nil
}

// launchFailed cleans up after a failed launch and returns the error to
// report. A cancelled scheduler launch is returned unchanged and without a
// message so the caller can clean up the job.
func (m *Manager) launchFailed(key domain.EngineKey, profile domain.LaunchProfile, proxy ports.EngineProxy, err error) error {
	if proxy != nil {
		if cerr := proxy.Close(); cerr != nil {
			m.deps.Logger.Warn(fmt.Sprintf("closing engine proxy for %s: %v", key, cerr))
		}
	}
	m.registry.AbortLaunch(key)
	if cerr := m.deps.Profiles.Clear(key.Host); cerr != nil {
		m.deps.Logger.Warn(fmt.Sprintf("could not clear launch profile for %s: %v", key.Host, cerr))
	}
	m.deps.Notifier.ClearStatus(key)
	m.deps.Metrics.LaunchFailed(key.Host, failureReason(err))

	if errors.Is(err, domain.ErrCancelledConnect) && profile.IsSchedulerLaunch() {
		return err
	}

	m.deps.Notifier.Message(domain.LogLevelError, describeLaunchFailure(key, err))
	return zerr.With(zerr.Wrap(err, "failed to launch engine"), "key", key.String())
}

// resolveProfile picks the launch profile for host: the cached one, then
// the user's choice among configured ones, then the first configured one,
// then the default.
func (m *Manager) resolveProfile(ctx context.Context, host string, skipChooser bool) (domain.LaunchProfile, error) {
	cached, err := m.deps.Profiles.Get(host)
	if err != nil {
		m.deps.Logger.Warn(fmt.Sprintf("ignoring launch profile cache for %s: %v", host, err))
	}
	if cached != nil {
		return cached.Clone(), nil
	}

	cfg := &domain.Config{Profiles: m.profiles}
	candidates := cfg.ProfilesFor(host)
	if !skipChooser && m.deps.Chooser != nil && len(candidates) > 1 {
		return m.deps.Chooser.Choose(ctx, host, candidates)
	}
	if len(candidates) > 0 {
		return candidates[0], nil
	}
	return domain.DefaultLaunchProfile(host), nil
}

// processLauncher returns what starts the engine process: nothing for
// localhost, an existing server in the same batch job, or a launcher on the
// remote host.
func (m *Manager) processLauncher(ctx context.Context, host string, profile domain.LaunchProfile) (ports.ProcessLauncher, error) {
	switch {
	case domain.IsLocalHost(host):
		return nil, nil
	case profile.ShareBatchJob && m.deps.Batch != nil:
		return m.deps.Batch.Launcher(ctx, host)
	case m.deps.Provider != nil:
		return m.deps.Provider.Launcher(ctx, host, profile)
	default:
		return nil, nil
	}
}

func (m *Manager) launchArguments(profile domain.LaunchProfile, opts EngineOptions) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Concat(m.cfg.Arguments, m.arguments, profile.Arguments, opts.Arguments)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrBadHostname):
		return "bad_hostname"
	case errors.Is(err, domain.ErrIncompatibleVersion):
		return "incompatible_version"
	case errors.Is(err, domain.ErrIncompatibleSecurityToken):
		return "incompatible_security_token"
	case errors.Is(err, domain.ErrCouldNotConnect):
		return "could_not_connect"
	case errors.Is(err, domain.ErrCancelledConnect):
		return "cancelled"
	case errors.Is(err, domain.ErrLostConnection):
		return "lost_connection"
	default:
		return "other"
	}
}

func describeLaunchFailure(key domain.EngineKey, err error) string {
	switch {
	case errors.Is(err, domain.ErrBadHostname):
		return fmt.Sprintf("The engine could not be launched because %q is not a valid host name.", key.Host)
	case errors.Is(err, domain.ErrIncompatibleVersion):
		return fmt.Sprintf("The engine on %s runs a version that is incompatible with this client.", key)
	case errors.Is(err, domain.ErrIncompatibleSecurityToken):
		return fmt.Sprintf("The engine on %s did not accept the security key.", key)
	case errors.Is(err, domain.ErrCouldNotConnect):
		return fmt.Sprintf("The engine on %s was launched but never connected back.", key)
	case errors.Is(err, domain.ErrCancelledConnect):
		return fmt.Sprintf("The launch of the engine on %s was cancelled.", key)
	case errors.Is(err, domain.ErrLostConnection):
		return fmt.Sprintf("The engine on %s exited while it was being started.", key)
	default:
		return fmt.Sprintf("The engine on %s could not be launched: %v", key, err)
	}
}
