package sessions_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/engine/sessions"
	"go.trai.ch/zerr"
)

func lostConnection() error {
	return zerr.Wrap(domain.ErrLostConnection, "socket closed")
}

func TestRestartPolicy_BoundedRetry(t *testing.T) {
	t.Parallel()

	calls, restarts := 0, 0
	err := sessions.DefaultRestartPolicy().Run(context.Background(),
		func(context.Context) error {
			calls++
			return lostConnection()
		},
		func(_ context.Context, attempt int) error {
			restarts++
			assert.Equal(t, restarts, attempt)
			return nil
		},
	)

	assert.ErrorIs(t, err, domain.ErrLostConnection)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, restarts)
}

func TestRestartPolicy_RecoversAfterRestart(t *testing.T) {
	t.Parallel()

	calls := 0
	err := sessions.RestartPolicy{NumRestarts: 2}.Run(context.Background(),
		func(context.Context) error {
			calls++
			if calls == 1 {
				return lostConnection()
			}
			return nil
		},
		func(context.Context, int) error { return nil },
	)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRestartPolicy_OtherErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{
		domain.ErrIncompatibleVersion,
		domain.ErrIncompatibleSecurityToken,
		domain.ErrInvalidVariable,
		errors.New("plain"),
	} {
		calls := 0
		err := sessions.DefaultRestartPolicy().Run(context.Background(),
			func(context.Context) error {
				calls++
				return cause
			},
			func(context.Context, int) error {
				t.Fatal("unexpected restart")
				return nil
			},
		)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 1, calls)
	}
}

func TestRestartPolicy_FatalRestartFailureStops(t *testing.T) {
	t.Parallel()

	calls, restarts := 0, 0
	err := sessions.DefaultRestartPolicy().Run(context.Background(),
		func(context.Context) error {
			calls++
			return lostConnection()
		},
		func(context.Context, int) error {
			restarts++
			return zerr.Wrap(domain.ErrIncompatibleSecurityToken, "key rejected")
		},
	)

	assert.ErrorIs(t, err, domain.ErrIncompatibleSecurityToken)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, restarts)
}

func TestRestartPolicy_TransientRestartFailureUsesAnAttempt(t *testing.T) {
	t.Parallel()

	calls, restarts := 0, 0
	err := sessions.DefaultRestartPolicy().Run(context.Background(),
		func(context.Context) error {
			calls++
			if calls == 1 {
				return lostConnection()
			}
			return nil
		},
		func(_ context.Context, attempt int) error {
			restarts++
			if attempt == 1 {
				return zerr.Wrap(domain.ErrCouldNotConnect, "timeout")
			}
			return nil
		},
	)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, restarts)
}

func TestRestartPolicy_TransientRestartFailuresExhaustBudget(t *testing.T) {
	t.Parallel()

	calls, restarts := 0, 0
	err := sessions.DefaultRestartPolicy().Run(context.Background(),
		func(context.Context) error {
			calls++
			return lostConnection()
		},
		func(context.Context, int) error {
			restarts++
			return zerr.Wrap(domain.ErrCouldNotConnect, "timeout")
		},
	)

	assert.ErrorIs(t, err, domain.ErrCouldNotConnect)
	assert.Equal(t, 1, calls)
	assert.Equal(t, sessions.DefaultNumRestarts, restarts)
}

func TestRestartPolicy_ZeroRestarts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := sessions.RestartPolicy{}.Run(context.Background(),
		func(context.Context) error {
			calls++
			return lostConnection()
		},
		func(context.Context, int) error {
			t.Fatal("unexpected restart")
			return nil
		},
	)
	assert.ErrorIs(t, err, domain.ErrLostConnection)
	assert.Equal(t, 1, calls)
}

func TestRestartPolicy_WaitsBetweenRestarts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		start := time.Now()
		var at []time.Duration

		_ = sessions.RestartPolicy{NumRestarts: 2, RetryDelay: time.Second}.Run(context.Background(),
			func(context.Context) error { return lostConnection() },
			func(context.Context, int) error {
				at = append(at, time.Since(start))
				return nil
			},
		)

		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, at)
	})
}

func TestRestartPolicy_CancelledDuringWait(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		err := sessions.RestartPolicy{NumRestarts: 2, RetryDelay: time.Second}.Run(ctx,
			func(context.Context) error { return lostConnection() },
			func(context.Context, int) error {
				t.Fatal("unexpected restart")
				return nil
			},
		)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
