package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectories are never watched.
var skipDirectories = map[string]bool{
	".git":              true,
	domain.VisitDirName: true,
}

const eventBuffer = 100

// Watcher reports changes below a root directory using fsnotify.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger ports.Logger
	events chan ports.WatchEvent
}

// New returns a watcher that logs file system errors to logger.
func New(logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fsw:    fsw,
		logger: logger,
		events: make(chan ports.WatchEvent, eventBuffer),
	}, nil
}

// Start watches root and every directory below it until ctx is done.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range directories(root) {
		if err := w.fsw.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "directory", dir)
		}
	}
	go w.loop(ctx)
	return nil
}

// Stop releases the watcher. Events ends once pending events are drained.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

// Events implements ports.Watcher.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skipDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.events)
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			ev, ok := convert(raw)
			if !ok {
				continue
			}
			select {
			case w.events <- ev:
			case <-ctx.Done():
				return
			}
			if ev.Operation == ports.OpCreate {
				w.addIfDirectory(raw.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher: " + err.Error())
		}
	}
}

func (w *Watcher) addIfDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skipDirectories[info.Name()] {
		return
	}
	for dir := range directories(path) {
		_ = w.fsw.Add(dir)
	}
}

func convert(ev fsnotify.Event) (ports.WatchEvent, bool) {
	switch {
	case ev.Has(fsnotify.Write):
		return ports.WatchEvent{Path: ev.Name, Operation: ports.OpWrite}, true
	case ev.Has(fsnotify.Create):
		return ports.WatchEvent{Path: ev.Name, Operation: ports.OpCreate}, true
	case ev.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: ev.Name, Operation: ports.OpRemove}, true
	case ev.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: ev.Name, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
