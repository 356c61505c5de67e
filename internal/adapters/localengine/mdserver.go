package localengine

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// GetFileList implements ports.MetaDataService.
func (e *Engine) GetFileList(_ context.Context, req domain.FileListRequest) (domain.FileList, error) {
	return ListDirectory(e.directory(), req)
}

// ChangeDirectory implements ports.MetaDataService.
func (e *Engine) ChangeDirectory(_ context.Context, dir string) error {
	path := e.resolve(dir)
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrChangeDirectoryFailed, err.Error()), "directory", path)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrChangeDirectoryFailed, "not a directory"), "directory", path)
	}
	e.mu.Lock()
	e.cwd = path
	e.mu.Unlock()
	return nil
}

// GetDirectory implements ports.MetaDataService.
func (e *Engine) GetDirectory(_ context.Context) (string, error) {
	return e.directory(), nil
}

func (e *Engine) directory() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cwd
}

// ExpandPath implements ports.MetaDataService.
func (e *Engine) ExpandPath(_ context.Context, path string) (string, error) {
	return e.resolve(path), nil
}

// GetSeparator implements ports.MetaDataService.
func (e *Engine) GetSeparator(_ context.Context) (string, error) {
	return string(filepath.Separator), nil
}

// GetMetaData implements ports.MetaDataService.
func (e *Engine) GetMetaData(_ context.Context, file string, timeState int) (*domain.Metadata, error) {
	db, err := OpenDatabase(e.resolve(file))
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrGetMetaDataFailed, err.Error()), "file", file), "state", timeState)
	}
	t, doms, err := e.table(db, timeState)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrGetMetaDataFailed, err.Error()), "file", file), "state", timeState)
	}
	return metadata(db, t, doms), nil
}

// GetSIL implements ports.MetaDataService.
func (e *Engine) GetSIL(_ context.Context, file string, timeState int) (*domain.SIL, error) {
	db, err := OpenDatabase(e.resolve(file))
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrGetSILFailed, err.Error()), "file", file), "state", timeState)
	}
	_, doms, err := e.table(db, timeState)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrGetSILFailed, err.Error()), "file", file), "state", timeState)
	}
	return sil(db, doms), nil
}

// CloseDatabase implements ports.MetaDataService.
func (e *Engine) CloseDatabase(_ context.Context, file string) error {
	e.forget(e.resolve(file))
	return nil
}
