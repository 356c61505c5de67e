package rpc

import (
	"sync"
	"time"
)

// Lifecycle shuts a server down after a period without calls. A zero
// timeout keeps the server up until Shutdown is called.
type Lifecycle struct {
	mu           sync.Mutex
	timer        *time.Timer
	started      time.Time
	lastCall     time.Time
	timeout      time.Duration
	done         chan struct{}
	shutdownOnce sync.Once
}

// NewLifecycle starts the idle clock.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	now := time.Now()
	l := &Lifecycle{
		started:  now,
		lastCall: now,
		timeout:  timeout,
		done:     make(chan struct{}),
	}
	if timeout > 0 {
		l.timer = time.AfterFunc(timeout, l.close)
	}
	return l
}

// Touch records a call and restarts the idle clock.
func (l *Lifecycle) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastCall = time.Now()
	if l.timer != nil {
		l.timer.Reset(l.timeout)
	}
}

// IdleRemaining returns the time left before an idle shutdown, or zero
// when idle shutdown is disabled.
func (l *Lifecycle) IdleRemaining() time.Duration {
	if l.timeout <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(l.timeout-time.Since(l.lastCall), 0)
}

// Uptime returns how long the server has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.started)
}

// LastCall returns the time of the last call.
func (l *Lifecycle) LastCall() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastCall
}

// Done is closed once the server should stop.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}

// Shutdown stops the server now.
func (l *Lifecycle) Shutdown() {
	if l.timer != nil {
		l.timer.Stop()
	}
	l.close()
}

func (l *Lifecycle) close() {
	l.shutdownOnce.Do(func() { close(l.done) })
}
