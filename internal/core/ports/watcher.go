package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp is the kind of change a watcher reports.
type WatchOp uint8

// Changes reported for files below a watched data directory.
const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

// WatchEvent is one change below a watched directory.
type WatchEvent struct {
	// Path is absolute.
	Path      string
	Operation WatchOp
}

// Watcher reports changes to the files of a data directory tree so cached
// metadata of those files can be dropped.
type Watcher interface {
	// Start watches root and every directory below it.
	Start(ctx context.Context, root string) error
	// Stop ends watching. Events is exhausted afterwards.
	Stop() error
	// Events yields changes until the watcher stops.
	Events() iter.Seq[WatchEvent]
}
