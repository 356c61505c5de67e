package app

import (
	"context"
	"strings"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/engine/dispatch"
	"go.trai.ch/zerr"
)

// ListOptions qualify a directory listing.
type ListOptions struct {
	// Filter replaces the configured file filter when set.
	Filter string
}

// splitTarget splits "host:path" into its parts. A target without a host
// prefix is on LocalHost.
func splitTarget(target string) (host, p string) {
	i := strings.Index(target, ":")
	drive := i == 1 && len(target) > 2 && (target[2] == '/' || target[2] == '\\')
	if i <= 0 || drive {
		return domain.LocalHost, target
	}
	return domain.NormalizeHost(target[:i]), target[i+1:]
}

// List lists target ("[host:]dir") through the metadata server of its host.
func (a *App) List(ctx context.Context, target string, opts ListOptions) (list domain.FileList, err error) {
	s, err := a.Open()
	if err != nil {
		return domain.FileList{}, err
	}
	defer a.closeSession(ctx, s, &err)

	host, dir := splitTarget(target)
	s.Files.SetHost(host)
	if opts.Filter != "" {
		s.Files.SetFilter(opts.Filter)
	}
	if dir != "" {
		if err := s.Files.ChangeDirectory(ctx, host, dir); err != nil {
			return domain.FileList{}, err
		}
	}
	return s.Files.GetFileList(ctx)
}

// FileInfo is what the metadata command reports.
type FileInfo struct {
	File     domain.QualifiedFilename
	MetaData *domain.Metadata
	SIL      *domain.SIL
}

// MetaData reads the metadata and SIL of target ("[host:]file") at state.
func (a *App) MetaData(ctx context.Context, target string, state int) (info FileInfo, err error) {
	s, err := a.Open()
	if err != nil {
		return FileInfo{}, err
	}
	defer a.closeSession(ctx, s, &err)

	file, err := a.resolve(ctx, s, target)
	if err != nil {
		return FileInfo{}, err
	}
	md, err := s.Files.GetMetaData(ctx, file, state, false, false)
	if err != nil {
		return FileInfo{}, err
	}
	sil, err := s.Files.GetSIL(ctx, file, state, false, false)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{File: file, MetaData: md, SIL: sil}, nil
}

// resolve qualifies target with the absolute path its server reports.
func (a *App) resolve(ctx context.Context, s *Session, target string) (domain.QualifiedFilename, error) {
	host, p := splitTarget(target)
	if p == "" {
		return domain.QualifiedFilename{}, zerr.With(zerr.Wrap(domain.ErrInvalidFile, "no file named"), "target", target)
	}
	abs, err := s.Files.ExpandPath(ctx, host, p)
	if err != nil {
		return domain.QualifiedFilename{}, err
	}
	return domain.ParseQualifiedFilename(domain.NormalizeHost(host) + ":" + abs), nil
}

// QueryOptions name a query against one variable of a file.
type QueryOptions struct {
	Host      string
	File      string
	Variable  string
	Name      string
	TimeState int
}

// Query launches an engine on the host, plots the variable and runs a
// named query on it.
func (a *App) Query(ctx context.Context, opts QueryOptions) (result domain.QueryResult, err error) {
	s, err := a.Open()
	if err != nil {
		return domain.QueryResult{}, err
	}
	defer a.closeSession(ctx, s, &err)

	host := domain.NormalizeHost(opts.Host)
	file, err := a.resolve(ctx, s, host+":"+opts.File)
	if err != nil {
		return domain.QueryResult{}, err
	}

	key := domain.NewEngineKey(host)
	if err := s.Engines.CreateEngineEx(ctx, key, dispatch.EngineOptions{SkipChooser: true}); err != nil {
		return domain.QueryResult{}, err
	}
	if err := s.Engines.OpenDatabase(ctx, key, domain.OpenDatabaseRequest{
		File:      file.PathAndFile(),
		TimeState: opts.TimeState,
	}); err != nil {
		return domain.QueryResult{}, err
	}
	id, err := s.Engines.MakePlot(ctx, key, domain.MakePlotRequest{
		PlotType: domain.PlotPseudocolor,
		Variable: opts.Variable,
	})
	if err != nil {
		return domain.QueryResult{}, err
	}
	if _, err := s.Engines.Execute(ctx, key, id); err != nil {
		return domain.QueryResult{}, err
	}
	defer func() {
		if rerr := s.Engines.ReleaseData(ctx, key, id); rerr != nil {
			a.deps.Logger.Warn("releasing plot data: " + rerr.Error())
		}
	}()

	return s.Engines.Query(ctx, key, domain.QueryRequest{
		NetworkID: id,
		Name:      opts.Name,
		Variable:  opts.Variable,
		TimeState: opts.TimeState,
	})
}
