package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/cmd/visit/commands"
	"go.trai.ch/visit/internal/app"
	"go.trai.ch/visit/internal/build"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/engine/transform"
)

type mockApp struct {
	listFunc      func(ctx context.Context, target string, opts app.ListOptions) (domain.FileList, error)
	metaDataFunc  func(ctx context.Context, target string, state int) (app.FileInfo, error)
	queryFunc     func(ctx context.Context, opts app.QueryOptions) (domain.QueryResult, error)
	transformFunc func(path string) (app.TransformResult, error)
	cullFunc      func(viewPath, extentsPath string) ([]int, error)
	sessionFunc   func(ctx context.Context, opts app.SessionOptions) error
	serveFunc     func(ctx context.Context, opts app.ServeOptions) error
}

func (m *mockApp) List(ctx context.Context, target string, opts app.ListOptions) (domain.FileList, error) {
	return m.listFunc(ctx, target, opts)
}

func (m *mockApp) MetaData(ctx context.Context, target string, state int) (app.FileInfo, error) {
	return m.metaDataFunc(ctx, target, state)
}

func (m *mockApp) Query(ctx context.Context, opts app.QueryOptions) (domain.QueryResult, error) {
	return m.queryFunc(ctx, opts)
}

func (m *mockApp) Transform(path string) (app.TransformResult, error) {
	return m.transformFunc(path)
}

func (m *mockApp) Cull(viewPath, extentsPath string) ([]int, error) {
	return m.cullFunc(viewPath, extentsPath)
}

func (m *mockApp) RunSession(ctx context.Context, opts app.SessionOptions) error {
	return m.sessionFunc(ctx, opts)
}

func (m *mockApp) Serve(ctx context.Context, opts app.ServeOptions) error {
	return m.serveFunc(ctx, opts)
}

type recordingLog struct {
	json  bool
	level domain.LogLevel
}

func (r *recordingLog) SetJSON(enable bool)            { r.json = enable }
func (r *recordingLog) SetLevel(level domain.LogLevel) { r.level = level }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Ls(t *testing.T) {
	var gotTarget string
	var gotOpts app.ListOptions
	mock := &mockApp{
		listFunc: func(_ context.Context, target string, opts app.ListOptions) (domain.FileList, error) {
			gotTarget, gotOpts = target, opts
			return domain.FileList{
				Directory: "/data",
				Dirs:      []domain.FileEntry{{Name: ".."}},
				Files: []domain.FileEntry{
					{Name: "a.csv", Size: 12, CanAccess: true},
					{Name: "wave*.csv database", CanAccess: true, IsVirtual: true, Members: []string{"wave1.csv", "wave2.csv"}},
				},
			}, nil
		},
	}

	out, err := execute(t, mock, "ls", "hpc:/data", "--filter", "*.csv")
	require.NoError(t, err)
	assert.Equal(t, "hpc:/data", gotTarget)
	assert.Equal(t, "*.csv", gotOpts.Filter)
	assert.Contains(t, out, "/data")
	assert.Contains(t, out, "a.csv")
	assert.Contains(t, out, "2 files")
}

func TestCommands_LsJSON(t *testing.T) {
	mock := &mockApp{
		listFunc: func(context.Context, string, app.ListOptions) (domain.FileList, error) {
			return domain.FileList{Directory: "/data"}, nil
		},
	}

	out, err := execute(t, mock, "ls", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"directory": "/data"`)
}

func TestCommands_MetaData(t *testing.T) {
	var gotState int
	mock := &mockApp{
		metaDataFunc: func(_ context.Context, target string, state int) (app.FileInfo, error) {
			gotState = state
			return app.FileInfo{
				File: domain.ParseQualifiedFilename(target),
				MetaData: &domain.Metadata{
					FileFormat: "CSV",
					NumStates:  3,
					Cycles:     []int{1, 2, 3},
					Variables:  []domain.Variable{{Name: "v", Min: 0, Max: 9}},
				},
				SIL: &domain.SIL{Sets: []domain.SILSet{{}}},
			}, nil
		},
	}

	out, err := execute(t, mock, "metadata", "hpc:/data/a.csv", "--state", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, gotState)
	assert.Contains(t, out, "hpc:/data/a.csv")
	assert.Contains(t, out, "cycles   1 2 3")
	assert.Contains(t, out, "variable v")
	assert.Contains(t, out, "1 sets")
}

func TestCommands_Query(t *testing.T) {
	var got app.QueryOptions
	mock := &mockApp{
		queryFunc: func(_ context.Context, opts app.QueryOptions) (domain.QueryResult, error) {
			got = opts
			return domain.QueryResult{Name: opts.Name, Values: []float64{10}, Message: "NumRows of v is 10"}, nil
		},
	}

	out, err := execute(t, mock, "query", "hpc", "a.csv", "v", "--name", domain.QueryNumRows)
	require.NoError(t, err)
	assert.Equal(t, app.QueryOptions{Host: "hpc", File: "a.csv", Variable: "v", Name: domain.QueryNumRows}, got)
	assert.Contains(t, out, "NumRows of v is 10")

	_, err = execute(t, mock, "query", "hpc", "a.csv")
	require.Error(t, err)
}

func TestCommands_View(t *testing.T) {
	mock := &mockApp{
		transformFunc: func(string) (app.TransformResult, error) {
			return app.TransformResult{Matrix: transform.Identity()}, nil
		},
		cullFunc: func(viewPath, extentsPath string) ([]int, error) {
			assert.Equal(t, "view.yaml", viewPath)
			assert.Equal(t, "extents.yaml", extentsPath)
			return []int{0, 2}, nil
		},
	}

	out, err := execute(t, mock, "view", "transform", "view.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "1.000000")

	out, err = execute(t, mock, "view", "cull", "view.yaml", "extents.yaml")
	require.NoError(t, err)
	assert.Equal(t, "0 2\n", out)
}

func TestCommands_Session(t *testing.T) {
	var got app.SessionOptions
	mock := &mockApp{
		sessionFunc: func(_ context.Context, opts app.SessionOptions) error {
			got = opts
			return nil
		},
	}

	_, err := execute(t, mock, "session", "--host", "a", "--host", "b", "--watch", "/data", "--metrics", ":9090")
	require.NoError(t, err)
	assert.Equal(t, app.SessionOptions{Hosts: []string{"a", "b"}, Watch: "/data", MetricsAddr: ":9090"}, got)
}

func TestCommands_EngineServe(t *testing.T) {
	var got app.ServeOptions
	mock := &mockApp{
		serveFunc: func(_ context.Context, opts app.ServeOptions) error {
			got = opts
			return nil
		},
	}

	// The launcher starts engines with exactly these arguments.
	_, err := execute(t, mock, "engine", "serve", "--role", domain.RoleMetaData, "--listen", "127.0.0.1:5600",
		"--key", "k", "--idle-timeout", "1m", "--", "-debug", "5")
	require.NoError(t, err)
	assert.Equal(t, app.ServeOptions{
		Listen:      "127.0.0.1:5600",
		Key:         "k",
		Role:        domain.RoleMetaData,
		IdleTimeout: time.Minute,
		Procs:       1,
		Args:        []string{"-debug", "5"},
	}, got)
}

func TestCommands_ReturnsAppErrors(t *testing.T) {
	mock := &mockApp{
		listFunc: func(context.Context, string, app.ListOptions) (domain.FileList, error) {
			return domain.FileList{}, errors.New("simulated error")
		},
	}

	_, err := execute(t, mock, "ls")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_OutputFlags(t *testing.T) {
	log := &recordingLog{level: domain.LogLevelInfo}
	mock := &mockApp{
		cullFunc: func(string, string) ([]int, error) { return nil, nil },
	}

	cli := commands.New(mock, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"view", "cull", "a", "b", "--output", "json", "--verbose"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
	assert.Equal(t, domain.LogLevelDebug, log.level)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, domain.ProtocolVersion)
}
