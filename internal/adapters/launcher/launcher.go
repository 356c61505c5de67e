// Package launcher starts engine and metadata servers and connects to them.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"os"
	"strconv"
	"time"

	"go.trai.ch/visit/internal/adapters/rpc"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
)

const (
	pollInterval   = 100 * time.Millisecond
	attemptTimeout = time.Second
	connectTimeout = 5 * time.Second
	// portSpread is the number of ports above the base that remote servers
	// are spread over.
	portSpread = 400
)

// Resolver checks that a host name resolves.
type Resolver func(ctx context.Context, host string) error

// Option configures a Launcher.
type Option func(*Launcher)

// WithLocal replaces the launcher used for processes on this machine.
func WithLocal(p ports.ProcessLauncher) Option {
	return func(l *Launcher) { l.local = p }
}

// WithResolver replaces the host name check.
func WithResolver(r Resolver) Option {
	return func(l *Launcher) { l.resolve = r }
}

// WithDialOptions adds options to every connection.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(l *Launcher) { l.dialOpts = append(l.dialOpts, opts...) }
}

// WithPollInterval sets how often a starting server is probed.
func WithPollInterval(d time.Duration) Option {
	return func(l *Launcher) { l.poll = d }
}

// Launcher implements ports.Launcher.
type Launcher struct {
	self          string
	remoteProgram string
	logPath       string
	portBase      int
	poll          time.Duration
	local         ports.ProcessLauncher
	shell         string
	resolve       Resolver
	dialOpts      []grpc.DialOption
	logger        ports.Logger
}

// New returns a launcher that starts servers with the running executable
// locally and with cfg.Executable (or "visit") remotely.
func New(cfg domain.EngineConfig, logPath string, logger ports.Logger, opts ...Option) (*Launcher, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	l := &Launcher{
		self:          self,
		remoteProgram: cfg.Executable,
		logPath:       logPath,
		portBase:      cfg.RemotePortBase,
		poll:          pollInterval,
		local:         LocalProcess{},
		shell:         "ssh",
		resolve:       lookupHost,
		dialOpts:      []grpc.DialOption{fastReconnect()},
		logger:        logger,
	}
	if l.remoteProgram == "" {
		l.remoteProgram = "visit"
	}
	if l.portBase <= 0 {
		l.portBase = domain.DefaultRemotePortBase
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// fastReconnect keeps the reconnect backoff short so a starting server is
// noticed soon after it listens.
func fastReconnect() grpc.DialOption {
	return grpc.WithConnectParams(grpc.ConnectParams{
		Backoff:           backoff.Config{BaseDelay: pollInterval, Multiplier: 1.6, Jitter: 0.2, MaxDelay: time.Second},
		MinConnectTimeout: attemptTimeout,
	})
}

func lookupHost(ctx context.Context, host string) error {
	_, err := net.DefaultResolver.LookupHost(ctx, host)
	return err
}

// LaunchEngine implements ports.Launcher.
func (l *Launcher) LaunchEngine(ctx context.Context, req domain.LaunchRequest, via ports.ProcessLauncher) (ports.EngineProxy, error) {
	if req.Role == "" {
		req.Role = domain.RoleEngine
	}
	c, err := l.launch(ctx, req, via)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// LaunchMetaData implements ports.Launcher.
func (l *Launcher) LaunchMetaData(ctx context.Context, req domain.LaunchRequest) (ports.MetaDataProxy, error) {
	req.Role = domain.RoleMetaData
	c, err := l.launch(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ConnectEngine implements ports.Launcher.
func (l *Launcher) ConnectEngine(ctx context.Context, addr, securityKey string) (ports.EngineProxy, error) {
	c, err := l.await(ctx, addr, securityKey, connectTimeout)
	if err != nil {
		return nil, zerr.With(err, "addr", addr)
	}
	return c, nil
}

func (l *Launcher) launch(ctx context.Context, req domain.LaunchRequest, via ports.ProcessLauncher) (*rpc.Client, error) {
	host := domain.NormalizeHost(req.Key.Host)
	if !domain.IsLocalHost(host) {
		if err := l.resolve(ctx, host); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrBadHostname, err.Error()), "host", host)
		}
	}

	listen, dial, launcher, program, err := l.plan(host, req, via)
	if err != nil {
		return nil, err
	}

	name, args := parallelCommand(req.Profile, program, serverArguments(req, listen))
	if l.logger != nil {
		l.logger.Info(fmt.Sprintf("starting %s on %s: %s", req.Role, host, shellJoin(append([]string{name}, args...))))
	}
	if err := launcher.LaunchProcess(ctx, domain.ProcessLaunchRequest{
		Program:   name,
		Arguments: args,
		LogPath:   l.logPath,
	}); err != nil {
		return nil, zerr.With(launchError(err), "host", host)
	}

	timeout := req.Timeout
	if req.Profile.IsSchedulerLaunch() {
		// Batch jobs start whenever the queue allows; only cancellation
		// ends the wait.
		timeout = 0
	}
	c, err := l.await(ctx, dial, req.SecurityKey, timeout)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "host", host), "addr", dial)
	}
	return c, nil
}

// plan decides where the server listens, where the client dials, and what
// starts the process.
func (l *Launcher) plan(host string, req domain.LaunchRequest, via ports.ProcessLauncher) (listen, dial string, launcher ports.ProcessLauncher, program string, err error) {
	if domain.IsLocalHost(host) {
		port, perr := freePort()
		if perr != nil {
			return "", "", nil, "", perr
		}
		addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
		launcher = l.local
		if via != nil {
			launcher = via
		}
		return addr, addr, launcher, l.self, nil
	}

	program = l.remoteProgram
	if req.Profile.Executable != "" {
		program = req.Profile.Executable
	}
	//nolint:gosec // G404: port spreading needs no cryptographic randomness
	port := l.portBase + rand.IntN(portSpread)

	if via != nil {
		return net.JoinHostPort("", strconv.Itoa(port)), net.JoinHostPort(host, strconv.Itoa(port)), via, program, nil
	}
	if req.ReverseLaunch {
		local, perr := freePort()
		if perr != nil {
			return "", "", nil, "", perr
		}
		shell := RemoteShell{Host: host, Shell: l.shell, Forward: local, RemotePort: port, Local: l.local}
		return net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), net.JoinHostPort("127.0.0.1", strconv.Itoa(local)), shell, program, nil
	}
	shell := RemoteShell{Host: host, Shell: l.shell, Local: l.local}
	return net.JoinHostPort("", strconv.Itoa(port)), net.JoinHostPort(host, strconv.Itoa(port)), shell, program, nil
}

func freePort() (int, error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, zerr.Wrap(err, "failed to reserve a local port")
	}
	port := lis.Addr().(*net.TCPAddr).Port
	if err := lis.Close(); err != nil {
		return 0, zerr.Wrap(err, "failed to release a local port")
	}
	return port, nil
}

func launchError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSpawnFailed), domain.IsLaunchFailure(err):
		return err
	case errors.Is(err, context.Canceled):
		return zerr.Wrap(domain.ErrCancelledConnect, err.Error())
	default:
		return zerr.Wrap(domain.ErrSpawnFailed, err.Error())
	}
}

// await probes addr until a handshake succeeds. A zero timeout waits until
// ctx is done.
func (l *Launcher) await(ctx context.Context, addr, securityKey string, timeout time.Duration) (*rpc.Client, error) {
	c, err := rpc.Dial(addr, securityKey, l.dialOpts...)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrCouldNotConnect, err.Error())
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	var last error
	for {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		_, err := c.Handshake(attemptCtx)
		cancel()
		if err == nil {
			return c, nil
		}
		if errors.Is(err, domain.ErrIncompatibleVersion) || errors.Is(err, domain.ErrIncompatibleSecurityToken) {
			_ = c.Close()
			return nil, err
		}
		last = err

		select {
		case <-ctx.Done():
			_ = c.Close()
			return nil, zerr.Wrap(domain.ErrCancelledConnect, ctx.Err().Error())
		case <-deadline:
			_ = c.Close()
			return nil, zerr.With(zerr.Wrap(domain.ErrCouldNotConnect, "server did not answer in time"), "last_error", last.Error())
		case <-time.After(l.poll):
		}
	}
}
