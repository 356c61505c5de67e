// Package mdcache holds the most-recently-used caches of file metadata and
// subset inclusion lattices fetched from metadata servers.
package mdcache

import (
	"context"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultSize is the capacity used when a non-positive size is configured.
const DefaultSize = 50

// Lookup describes one cache query.
type Lookup struct {
	File      domain.QualifiedFilename
	TimeState int
	// AnyStateOk accepts an entry cached for any time state of the file.
	AnyStateOk bool
	// DontGetNew returns a miss instead of fetching.
	DontGetNew bool
}

// Fetched is the result of a remote fetch. Stateful entries are stored
// under the time-state-qualified key.
type Fetched[T any] struct {
	Value    *T
	Stateful bool
}

// FetchFunc retrieves a value from the remote side.
type FetchFunc[T any] func(ctx context.Context) (Fetched[T], error)

// Cache is a bounded MRU map from file keys to fetched values. Values are
// treated as immutable once cached; Update replaces a value under its key.
type Cache[T any] struct {
	kind        string
	entries     *lru.Cache[string, *T]
	clone       func(*T) *T
	metrics     ports.Metrics
	timeVarying bool
}

// New returns a cache of the given capacity. Kind labels metrics; clone
// copies fetched values into cache-owned memory.
func New[T any](kind string, size int, clone func(*T) *T, metrics ports.Metrics) (*Cache[T], error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *T](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache"), "kind", kind)
	}
	return &Cache[T]{kind: kind, entries: entries, clone: clone, metrics: metrics}, nil
}

// TreatAllAsTimeVarying makes every fetched value stateful.
func (c *Cache[T]) TreatAllAsTimeVarying(on bool) { c.timeVarying = on }

// Get returns the cached value for l, fetching and caching it on a miss.
// The stateless key is tried before the stateful one. The boolean result is
// false when nothing was found and no fetch was made.
func (c *Cache[T]) Get(ctx context.Context, l Lookup, fetch FetchFunc[T]) (*T, bool, error) {
	if v, ok := c.Find(l); ok {
		c.record(true)
		return v, true, nil
	}
	c.record(false)

	if l.DontGetNew || fetch == nil {
		return nil, false, nil
	}

	res, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}
	if res.Value == nil {
		return nil, false, nil
	}

	v := c.clone(res.Value)
	c.entries.Add(c.storeKey(l, res.Stateful), v)
	return v, true, nil
}

// Find looks l up without fetching.
func (c *Cache[T]) Find(l Lookup) (*T, bool) {
	full := l.File.FullName()
	for _, key := range [...]string{StatelessKey(full), StatefulKey(full, l.TimeState)} {
		if v, ok := c.entries.Get(key); ok {
			return v, true
		}
	}
	if !l.AnyStateOk {
		return nil, false
	}

	keys := c.entries.Keys()
	for _, key := range slices.Backward(keys) {
		if sameFile(key, full) {
			if v, ok := c.entries.Get(key); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// Update overwrites the value cached for file at timeState. The key already
// holding the file is reused; otherwise the value is inserted under the key
// selected by stateful. Values previously returned by Get for that key are
// superseded and must be re-read.
func (c *Cache[T]) Update(file domain.QualifiedFilename, timeState int, v *T, stateful bool) string {
	full := file.FullName()
	key := ""
	for _, k := range [...]string{StatelessKey(full), StatefulKey(full, timeState)} {
		if c.entries.Contains(k) {
			key = k
			break
		}
	}
	if key == "" {
		key = c.storeKey(Lookup{File: file, TimeState: timeState}, stateful)
	}
	c.entries.Add(key, c.clone(v))
	return key
}

// ClearFile removes every entry whose key starts with the file's full name.
func (c *Cache[T]) ClearFile(file domain.QualifiedFilename) int {
	return c.ClearPrefix(file.FullName())
}

// ClearPrefix removes every entry whose key starts with prefix.
func (c *Cache[T]) ClearPrefix(prefix string) int {
	n := 0
	for _, key := range c.entries.Keys() {
		if strings.HasPrefix(key, prefix) && c.entries.Remove(key) {
			n++
		}
	}
	return n
}

// Purge empties the cache.
func (c *Cache[T]) Purge() { c.entries.Purge() }

// Len returns the number of cached entries.
func (c *Cache[T]) Len() int { return c.entries.Len() }

// Keys returns the cached keys from least to most recently used.
func (c *Cache[T]) Keys() []string { return c.entries.Keys() }

func (c *Cache[T]) storeKey(l Lookup, stateful bool) string {
	full := l.File.FullName()
	if stateful || c.timeVarying {
		return StatefulKey(full, l.TimeState)
	}
	return StatelessKey(full)
}

func (c *Cache[T]) record(hit bool) {
	if c.metrics != nil {
		c.metrics.CacheLookup(c.kind, hit)
	}
}
