// Package watcher invalidates cached metadata when local data files change.
package watcher

import (
	"maps"
	"slices"
	"sync"
	"time"
)

// DefaultDebounceWindow is the quiet period before changed paths are reported.
const DefaultDebounceWindow = 200 * time.Millisecond

// Debouncer coalesces bursts of file events into one sorted batch of paths.
// The callback runs on the timer goroutine, or on the caller's for Flush.
type Debouncer struct {
	window time.Duration
	report func(paths []string)

	mu      sync.Mutex
	changed map[string]struct{}
	timer   *time.Timer
}

// NewDebouncer returns a debouncer calling report once window passed
// without a new path.
func NewDebouncer(window time.Duration, report func(paths []string)) *Debouncer {
	return &Debouncer{
		window:  window,
		report:  report,
		changed: make(map[string]struct{}),
	}
}

// Add records path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.changed[path] = struct{}{}
	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.emit)
		return
	}
	d.timer.Reset(d.window)
}

// Flush reports pending paths without waiting for the window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.emit()
}

// emit hands the pending paths to report. Whoever takes the batch first
// reports it, so a path is never reported twice.
func (d *Debouncer) emit() {
	d.mu.Lock()
	if len(d.changed) == 0 {
		d.mu.Unlock()
		return
	}
	paths := slices.Sorted(maps.Keys(d.changed))
	clear(d.changed)
	d.mu.Unlock()

	if d.report != nil {
		d.report(paths)
	}
}
