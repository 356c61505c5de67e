package sessions

import (
	"context"
	"time"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultNumRestarts is the number of rebuild-and-retry cycles after a lost
// connection.
const DefaultNumRestarts = 2

// RestartPolicy bounds how often a call is retried after its session lost
// the connection.
type RestartPolicy struct {
	// NumRestarts is the number of restart cycles; zero disables restarts.
	NumRestarts int
	// RetryDelay is waited before each restart.
	RetryDelay time.Duration
}

// DefaultRestartPolicy returns the policy used when none is configured.
func DefaultRestartPolicy() RestartPolicy {
	return RestartPolicy{NumRestarts: DefaultNumRestarts}
}

// CallFunc is one attempt of a remote call.
type CallFunc func(ctx context.Context) error

// RestartFunc rebuilds a session before attempt number attempt (from 1).
type RestartFunc func(ctx context.Context, attempt int) error

// Run calls call and, while it fails with a lost connection, rebuilds the
// session with restart and calls again, at most NumRestarts times. A restart
// that fails transiently uses up its attempt and the loop goes on; a fatal
// restart failure or any other call error ends it.
func (p RestartPolicy) Run(ctx context.Context, call CallFunc, restart RestartFunc) error {
	err := call(ctx)
	if !domain.IsConnectionLoss(err) {
		return err
	}
	for attempt := 1; ; attempt++ {
		if attempt > p.NumRestarts {
			return zerr.With(zerr.Wrap(err, "giving up after restarts"), "restarts", p.NumRestarts)
		}
		if werr := p.wait(ctx); werr != nil {
			return werr
		}
		if rerr := restart(ctx, attempt); rerr != nil {
			err = zerr.With(zerr.Wrap(rerr, "failed to restart session"), "attempt", attempt)
			if !domain.IsTransient(rerr) || ctx.Err() != nil {
				return err
			}
			continue
		}
		if err = call(ctx); !domain.IsConnectionLoss(err) {
			return err
		}
	}
}

func (p RestartPolicy) wait(ctx context.Context) error {
	if p.RetryDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.RetryDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
