package fileserver

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/engine/mdcache"
	"go.trai.ch/zerr"
)

// GetFileList lists the current directory of the current host with the
// current filter and grouping settings.
func (l *List) GetFileList(ctx context.Context) (domain.FileList, error) {
	s := l.Settings()
	var list domain.FileList
	err := l.withServer(ctx, s.Host, "GetFileList", func(ctx context.Context, p ports.MetaDataProxy) error {
		if s.Path != "" && !s.UseCurrentDir {
			if err := p.ChangeDirectory(ctx, s.Path); err != nil {
				return err
			}
		}
		var err error
		list, err = p.GetFileList(ctx, domain.FileListRequest{
			Filter:                s.Filter,
			AutomaticFileGrouping: s.AutomaticFileGrouping,
			SmartFileGrouping:     s.SmartFileGrouping,
		})
		return err
	})
	if err != nil {
		return domain.FileList{}, classify(err, domain.ErrGetFileListFailed, "host", s.Host)
	}
	return list, nil
}

// ChangeDirectory makes dir the current directory of host and records it as
// a recent path.
func (l *List) ChangeDirectory(ctx context.Context, host, dir string) error {
	host = domain.NormalizeHost(host)
	var resolved string
	err := l.withServer(ctx, host, "ChangeDirectory", func(ctx context.Context, p ports.MetaDataProxy) error {
		if err := p.ChangeDirectory(ctx, dir); err != nil {
			return err
		}
		var err error
		resolved, err = p.GetDirectory(ctx)
		return err
	})
	if err != nil {
		return classify(err, domain.ErrChangeDirectoryFailed, "dir", dir)
	}

	if s, ok := l.registry.Get(domain.NewEngineKey(host)); ok {
		s.SetDirectory(resolved)
	}
	l.mu.Lock()
	l.settings.Host = host
	l.settings.Path = resolved
	l.settings.AddRecentPath(host, resolved, RecentPathLimit)
	l.mu.Unlock()
	return nil
}

// GetDirectory returns the current directory of host.
func (l *List) GetDirectory(ctx context.Context, host string) (string, error) {
	if s, ok := l.registry.Get(domain.NewEngineKey(host)); ok && s.Directory() != "" {
		return s.Directory(), nil
	}
	var dir string
	err := l.withServer(ctx, host, "GetDirectory", func(ctx context.Context, p ports.MetaDataProxy) error {
		var err error
		dir, err = p.GetDirectory(ctx)
		return err
	})
	return dir, err
}

// ExpandPath resolves p on host.
func (l *List) ExpandPath(ctx context.Context, host, p string) (string, error) {
	var out string
	err := l.withServer(ctx, host, "ExpandPath", func(ctx context.Context, proxy ports.MetaDataProxy) error {
		var err error
		out, err = proxy.ExpandPath(ctx, p)
		return err
	})
	return out, err
}

// GetSeparator returns the path separator of host.
func (l *List) GetSeparator(ctx context.Context, host string) (string, error) {
	var sep string
	err := l.withServer(ctx, host, "GetSeparator", func(ctx context.Context, p ports.MetaDataProxy) error {
		var err error
		sep, err = p.GetSeparator(ctx)
		return err
	})
	return sep, err
}

// QualifiedName qualifies name with the current host and directory. Names
// of the form "host:/dir/file" and absolute paths keep what they name.
func (l *List) QualifiedName(name string) domain.QualifiedFilename {
	s := l.Settings()
	if i := strings.Index(name, ":"); i > 1 {
		return domain.ParseQualifiedFilename(name)
	}
	base := s.Path
	if sess, ok := l.registry.Get(domain.NewEngineKey(s.Host)); ok && (base == "" || base == ".") {
		base = sess.Directory()
	}
	if !strings.HasPrefix(name, "/") && base != "" {
		name = path.Join(base, name)
	}
	q := domain.ParseQualifiedFilename(name)
	q.Host = s.Host
	return q
}

// GetMetaData returns the metadata of file at timeState. AnyStateOk accepts
// metadata cached for another state; dontGetNew never contacts the server.
// A nil result without error means nothing was cached.
func (l *List) GetMetaData(ctx context.Context, file domain.QualifiedFilename, timeState int, anyStateOk, dontGetNew bool) (*domain.Metadata, error) {
	md, _, err := l.metadata.Get(ctx, mdcache.Lookup{
		File:       file,
		TimeState:  timeState,
		AnyStateOk: anyStateOk,
		DontGetNew: dontGetNew,
	}, func(ctx context.Context) (mdcache.Fetched[domain.Metadata], error) {
		var md *domain.Metadata
		err := l.withServer(ctx, file.Host, "GetMetaData", func(ctx context.Context, p ports.MetaDataProxy) error {
			var err error
			md, err = p.GetMetaData(ctx, file.PathAndFile(), timeState)
			return err
		})
		if err != nil {
			return mdcache.Fetched[domain.Metadata]{}, classify(err, domain.ErrGetMetaDataFailed, "file", file.FullName())
		}
		return mdcache.Fetched[domain.Metadata]{Value: md, Stateful: md != nil && md.MustRepopulateOnStateChange}, nil
	})
	return md, err
}

// GetSIL returns the subset inclusion lattice of file at timeState. It is
// cached per state when the file's metadata says so.
func (l *List) GetSIL(ctx context.Context, file domain.QualifiedFilename, timeState int, anyStateOk, dontGetNew bool) (*domain.SIL, error) {
	sil, _, err := l.sils.Get(ctx, mdcache.Lookup{
		File:       file,
		TimeState:  timeState,
		AnyStateOk: anyStateOk,
		DontGetNew: dontGetNew,
	}, func(ctx context.Context) (mdcache.Fetched[domain.SIL], error) {
		var sil *domain.SIL
		err := l.withServer(ctx, file.Host, "GetSIL", func(ctx context.Context, p ports.MetaDataProxy) error {
			var err error
			sil, err = p.GetSIL(ctx, file.PathAndFile(), timeState)
			return err
		})
		if err != nil {
			return mdcache.Fetched[domain.SIL]{}, classify(err, domain.ErrGetSILFailed, "file", file.FullName())
		}
		return mdcache.Fetched[domain.SIL]{Value: sil, Stateful: l.isTimeVarying(file, timeState)}, nil
	})
	return sil, err
}

func (l *List) isTimeVarying(file domain.QualifiedFilename, timeState int) bool {
	md, ok := l.metadata.Find(mdcache.Lookup{File: file, TimeState: timeState, AnyStateOk: true})
	return ok && md.MustRepopulateOnStateChange
}

// ClearFile drops every cached metadata and SIL entry of file.
func (l *List) ClearFile(file domain.QualifiedFilename) {
	prefix := file.FullName()
	l.metadata.ClearPrefix(prefix)
	l.sils.ClearPrefix(prefix)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key := range l.fingerprints {
		if strings.HasPrefix(key, "md:"+prefix) || strings.HasPrefix(key, "sil:"+prefix) {
			delete(l.fingerprints, key)
		}
	}
}

// CloseFile drops the cached entries of file and tells its server to release it.
func (l *List) CloseFile(ctx context.Context, file domain.QualifiedFilename) error {
	l.ClearFile(file)
	if !l.HasServer(file.Host) {
		return nil
	}
	return l.withServer(ctx, file.Host, "CloseDatabase", func(ctx context.Context, p ports.MetaDataProxy) error {
		return p.CloseDatabase(ctx, file.PathAndFile())
	})
}

// SetOpenFileMetaData replaces the cached metadata of a file, as a
// simulation does when its state advances. It reports whether the content
// differs from what was cached before.
func (l *List) SetOpenFileMetaData(file domain.QualifiedFilename, timeState int, md *domain.Metadata) (bool, error) {
	if md == nil {
		return false, zerr.With(zerr.Wrap(domain.ErrGetMetaDataFailed, "no metadata to store"), "file", file.FullName())
	}
	key := l.metadata.Update(file, timeState, md, md.MustRepopulateOnStateChange)
	return l.fingerprint("md:"+key, md)
}

// SetOpenFileSIL replaces the cached SIL of a file. It reports whether the
// content differs from what was cached before.
func (l *List) SetOpenFileSIL(file domain.QualifiedFilename, timeState int, sil *domain.SIL) (bool, error) {
	if sil == nil {
		return false, zerr.With(zerr.Wrap(domain.ErrGetSILFailed, "no SIL to store"), "file", file.FullName())
	}
	key := l.sils.Update(file, timeState, sil, l.isTimeVarying(file, timeState))
	return l.fingerprint("sil:"+key, sil)
}

func (l *List) fingerprint(key string, v any) (bool, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return false, zerr.Wrap(err, "failed to encode cached value")
	}
	sum := xxhash.Sum64(b)

	l.mu.Lock()
	defer l.mu.Unlock()
	old, ok := l.fingerprints[key]
	l.fingerprints[key] = sum
	return !ok || old != sum, nil
}

// classify marks err as a failure of kind unless it already carries a
// connection-level classification. The cause stays in the chain.
func classify(err error, kind error, k string, v any) error {
	if domain.IsFatalForSession(err) || errors.Is(err, domain.ErrCouldNotConnect) ||
		domain.IsConnectionLoss(err) || errors.Is(err, kind) || errors.Is(err, context.Canceled) {
		return err
	}
	return zerr.With(fmt.Errorf("%w: %w", kind, err), k, v)
}
