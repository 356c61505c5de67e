package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
)

// FileClearer drops cached metadata of a file.
type FileClearer interface {
	ClearFile(file domain.QualifiedFilename)
}

// Invalidator clears cached metadata of local files as they change.
type Invalidator struct {
	watcher ports.Watcher
	clearer FileClearer
	logger  ports.Logger
	window  time.Duration
}

// NewInvalidator returns an invalidator feeding events of w into c.
func NewInvalidator(w ports.Watcher, c FileClearer, logger ports.Logger, window time.Duration) *Invalidator {
	return &Invalidator{watcher: w, clearer: c, logger: logger, window: window}
}

// Run watches root until ctx is done. Pending changes are flushed before it
// returns.
func (inv *Invalidator) Run(ctx context.Context, root string) error {
	if err := inv.watcher.Start(ctx, root); err != nil {
		return err
	}
	d := NewDebouncer(inv.window, inv.clear)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range inv.watcher.Events() {
			d.Add(ev.Path)
		}
	}()

	<-ctx.Done()
	err := inv.watcher.Stop()
	<-done
	d.Flush()
	return err
}

func (inv *Invalidator) clear(paths []string) {
	for _, f := range Affected(paths) {
		inv.clearer.ClearFile(f)
	}
	inv.logger.Info(fmt.Sprintf("cleared cached metadata of %d changed file(s)", len(paths)))
}

// Affected returns the local files whose metadata a change to paths makes
// stale: each path, and the virtual database a numbered path belongs to.
func Affected(paths []string) []domain.QualifiedFilename {
	seen := map[string]bool{}
	var out []domain.QualifiedFilename
	add := func(dir, name string) {
		q := domain.NewQualifiedFilename(domain.LocalHost, dir, name, "/")
		q.IsVirtual = domain.IsVirtualDatabaseName(name)
		if seen[q.FullName()] {
			return
		}
		seen[q.FullName()] = true
		out = append(out, q)
	}
	for _, p := range paths {
		dir, name := filepath.Split(filepath.ToSlash(p))
		add(dir, name)
		if prefix, _, ext, ok := domain.SplitNumbered(name); ok {
			add(dir, domain.VirtualDatabaseName(prefix, ext))
		}
	}
	return out
}
