package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.trai.ch/visit/internal/adapters/watcher"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SessionOptions configure a long-running client session.
type SessionOptions struct {
	// Hosts get an engine at start.
	Hosts []string
	// Watch is a local directory whose changes invalidate cached metadata.
	Watch string
	// MetricsAddr serves /metrics when set.
	MetricsAddr string
}

// RunSession starts engines on the requested hosts and keeps them alive
// until ctx is done. The file server settings are saved on exit.
func (a *App) RunSession(ctx context.Context, opts SessionOptions) (err error) {
	s, err := a.Open()
	if err != nil {
		return err
	}
	defer a.closeSession(ctx, s, &err)

	for _, host := range opts.Hosts {
		if err := s.Engines.CreateEngine(ctx, domain.NewEngineKey(host), nil); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	// Keep-alive Routine
	interval := s.Config.Engine.KeepAliveInterval
	if interval <= 0 {
		interval = domain.DefaultKeepAliveInterval
	}
	g.Go(func() error {
		a.keepAlive(ctx, s, interval)
		return nil
	})

	// Watcher Routine
	if opts.Watch != "" {
		inv := watcher.NewInvalidator(a.deps.Watcher, s.Files, a.deps.Logger, watcher.DefaultDebounceWindow)
		g.Go(func() error {
			return inv.Run(ctx, opts.Watch)
		})
	}

	// Metrics Routine
	if opts.MetricsAddr != "" {
		var lc net.ListenConfig
		ln, err := lc.Listen(ctx, "tcp", opts.MetricsAddr)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to listen for metrics"), "addr", opts.MetricsAddr)
		}
		a.deps.Logger.Info(fmt.Sprintf("serving metrics on http://%s/metrics", ln.Addr()))
		g.Go(func() error {
			return a.deps.Metrics.Serve(ctx, ln)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := a.deps.Progress.Close(); err != nil {
		a.deps.Logger.Warn("flushing launch progress: " + err.Error())
	}
	if err := a.deps.Loader.SaveFileServer(a.cwd, s.Files.Settings()); err != nil {
		return zerr.Wrap(err, "failed to save file server settings")
	}
	return nil
}

func (a *App) keepAlive(ctx context.Context, s *Session, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := len(s.Engines.SendKeepAlives(ctx)) + len(s.Files.SendKeepAlives(ctx))
			if removed > 0 {
				a.deps.Logger.Info(fmt.Sprintf("removed %d unresponsive session(s)", removed))
			}
		}
	}
}
