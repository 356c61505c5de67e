package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"go.trai.ch/visit/internal/adapters/localengine"
	"go.trai.ch/visit/internal/adapters/rpc"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// ServeOptions configure an engine process.
type ServeOptions struct {
	Listen string
	// Listener is served instead of Listen when set.
	Listener    net.Listener
	Key         string
	Role        string
	IdleTimeout time.Duration
	Procs       int
	// Args are the engine arguments passed after "--".
	Args []string
}

// Serve runs an engine or metadata server on opts.Listen until ctx is done
// or the server idles out.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	role := opts.Role
	if role == "" {
		role = domain.RoleEngine
	}

	engine, err := a.deps.Engines.New(localengine.Options{Role: role, Procs: opts.Procs})
	if err != nil {
		return err
	}

	lis := opts.Listener
	if lis == nil {
		var lc net.ListenConfig
		if lis, err = lc.Listen(ctx, "tcp", opts.Listen); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", opts.Listen)
		}
	}

	srv := rpc.NewServer(engine, rpc.ServerOptions{
		Role:        role,
		SecurityKey: opts.Key,
		IdleTimeout: opts.IdleTimeout,
		Logger:      a.deps.Logger,
	})

	a.deps.Logger.Info(fmt.Sprintf("%s listening on %s", role, lis.Addr()))
	if len(opts.Args) > 0 {
		a.deps.Logger.Info("engine arguments: " + strings.Join(opts.Args, " "))
	}

	if err := srv.Serve(ctx, lis); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
