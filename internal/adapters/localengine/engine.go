// Package localengine answers engine and metadata server calls from CSV
// files on the local file system. Every row is one point; rows are split
// into fixed-size domains shared out across in-process ranks.
package localengine

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultRowsPerDomain is the number of rows in one domain.
	DefaultRowsPerDomain = 64
	// DefaultCacheSize is the number of tables kept in memory.
	DefaultCacheSize = 16
)

// Options configure an Engine.
type Options struct {
	Role          string
	Procs         int
	RowsPerDomain int
	CacheSize     int
	// Spawner starts processes for LaunchProcess.
	Spawner ports.ProcessLauncher
	Logger  ports.Logger
}

// Engine is an in-process engine and metadata server.
type Engine struct {
	role          string
	procs         int
	rowsPerDomain int
	spawner       ports.ProcessLauncher
	logger        ports.Logger
	tables        *lru.Cache[string, *Table]
	interrupted   atomic.Bool

	mu       sync.Mutex
	cwd      string
	settings domain.GlobalSettings
	building *network
	networks map[int]*network
	nextID   int
}

// New returns an engine rooted at the process working directory.
func New(opts Options) (*Engine, error) {
	if opts.Role == "" {
		opts.Role = domain.RoleEngine
	}
	if opts.Logger == nil {
		return nil, zerr.New("engine needs a logger")
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.RowsPerDomain <= 0 {
		opts.RowsPerDomain = DefaultRowsPerDomain
	}
	tables, err := lru.New[string, *Table](opts.CacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create table cache")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	return &Engine{
		role:          opts.Role,
		procs:         max(opts.Procs, 1),
		rowsPerDomain: opts.RowsPerDomain,
		spawner:       opts.Spawner,
		logger:        opts.Logger,
		tables:        tables,
		cwd:           cwd,
		settings:      domain.DefaultGlobalSettings(),
		networks:      map[int]*network{},
	}, nil
}

// SendKeepAlive implements ports.EngineService.
func (e *Engine) SendKeepAlive(_ context.Context) error { return nil }

// GetEngineProperties implements ports.EngineService.
func (e *Engine) GetEngineProperties(_ context.Context) (domain.EngineProperties, error) {
	host, err := os.Hostname()
	if err != nil {
		host = domain.LocalHost
	}
	return domain.EngineProperties{
		Host:          host,
		PID:           os.Getpid(),
		NumProcessors: e.procs,
		NumNodes:      1,
		LoadBalancing: "static",
		Version:       domain.ProtocolVersion,
		Role:          e.role,
	}, nil
}

// SetGlobalSettings implements ports.EngineService.
func (e *Engine) SetGlobalSettings(_ context.Context, settings domain.GlobalSettings) error {
	e.mu.Lock()
	e.settings = settings.Clone()
	e.mu.Unlock()
	return nil
}

// Settings returns the current global settings.
func (e *Engine) Settings() domain.GlobalSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.Clone()
}

// LaunchProcess implements ports.ProcessLauncher.
func (e *Engine) LaunchProcess(ctx context.Context, req domain.ProcessLaunchRequest) error {
	if e.spawner == nil {
		return zerr.With(zerr.Wrap(domain.ErrSpawnFailed, "server cannot start processes"), "program", req.Program)
	}
	return e.spawner.LaunchProcess(ctx, req)
}

// Interrupt implements ports.EngineService. A running Execute stops before
// its next domain.
func (e *Engine) Interrupt(_ context.Context) error {
	e.interrupted.Store(true)
	return nil
}

// ClearCache implements ports.EngineService.
func (e *Engine) ClearCache(_ context.Context, req domain.ClearCacheRequest) error {
	if req.ClearAll {
		e.tables.Purge()
		return nil
	}
	e.forget(e.resolve(req.File))
	return nil
}

// forget drops the cached tables of file and of its members.
func (e *Engine) forget(file string) {
	e.tables.Remove(file)
	if db, err := OpenDatabase(file); err == nil {
		for _, m := range db.Members {
			e.tables.Remove(m)
		}
	}
}

// table returns the parsed member of db at state.
func (e *Engine) table(db *Database, state int) (*Table, *Domains, error) {
	member, err := db.Member(state)
	if err != nil {
		return nil, nil, err
	}
	t, ok := e.tables.Get(member)
	if !ok {
		if t, err = ReadTable(member); err != nil {
			return nil, nil, err
		}
		e.tables.Add(member, t)
	}
	return t, NewDomains(t, e.rowsPerDomain), nil
}

func (e *Engine) loader(db *Database) stateLoader {
	return func(_ context.Context, state int) (*Table, *Domains, error) {
		return e.table(db, state)
	}
}

// resolve makes path absolute against the current directory.
func (e *Engine) resolve(path string) string {
	path = expandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return filepath.Join(e.cwd, path)
}

func expandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func hasHomePrefix(path string) bool {
	return len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
