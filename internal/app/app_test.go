package app_test

import (
	"context"
	"fmt"
	"iter"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/adapters/localengine"
	"go.trai.ch/visit/internal/adapters/rpc"
	"go.trai.ch/visit/internal/adapters/telemetry"
	"go.trai.ch/visit/internal/app"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// inProcess serves a local engine as if it had been launched.
type inProcess struct {
	*localengine.Engine
}

func (inProcess) Close() error { return nil }

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	launcher *mocks.MockLauncher
	watcher  *mocks.MockWatcher
	dir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	notify := mocks.NewMockNotifier(ctrl)
	notify.EXPECT().Message(gomock.Any(), gomock.Any()).AnyTimes()
	notify.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	notify.EXPECT().ClearStatus(gomock.Any()).AnyTimes()
	notify.EXPECT().InvalidateNetworks(gomock.Any()).AnyTimes()
	notify.EXPECT().EngineListChanged(gomock.Any()).AnyTimes()

	cache := mocks.NewMockProfileCache(ctrl)
	cache.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		launcher: mocks.NewMockLauncher(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		dir:      t.TempDir(),
	}
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil).AnyTimes()

	engines := &localengine.Factory{Logger: log}
	serve := func() inProcess {
		e, err := engines.New(localengine.Options{RowsPerDomain: 4})
		require.NoError(t, err)
		require.NoError(t, e.ChangeDirectory(context.Background(), f.dir))
		return inProcess{e}
	}
	f.launcher.EXPECT().LaunchMetaData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.LaunchRequest) (ports.MetaDataProxy, error) {
			return serve(), nil
		}).AnyTimes()
	f.launcher.EXPECT().LaunchEngine(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.LaunchRequest, ports.ProcessLauncher) (ports.EngineProxy, error) {
			return serve(), nil
		}).AnyTimes()

	f.app = app.New(app.Deps{
		Loader: f.loader,
		Launchers: func(domain.EngineConfig) (ports.Launcher, error) {
			return f.launcher, nil
		},
		Profiles: cache,
		Notifier: notify,
		Logger:   log,
		Tracer:   telemetry.NoOpTracer{},
		Metrics:  telemetry.NewMetrics(),
		Progress: telemetry.NoOpProgress{},
		Watcher:  f.watcher,
		Engines:  engines,
	}).WithWorkDir(f.dir)

	var b strings.Builder
	b.WriteString("x,y,z,v\n")
	for i := range 10 {
		fmt.Fprintf(&b, "%d,0,0,%d\n", i, i*10)
	}
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "pts.csv"), []byte(b.String()), domain.FilePerm))
	return f
}

func writeYAML(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
	return p
}

func TestApp_List(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "notes.txt"), nil, domain.FilePerm))

	list, err := f.app.List(context.Background(), "localhost:"+f.dir, app.ListOptions{Filter: "*.csv"})
	require.NoError(t, err)
	assert.Equal(t, f.dir, list.Directory)
	require.Len(t, list.Files, 1)
	assert.Equal(t, "pts.csv", list.Files[0].Name)
}

func TestApp_ListMissingDirectory(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.List(context.Background(), filepath.Join(f.dir, "gone"), app.ListOptions{})
	require.ErrorIs(t, err, domain.ErrChangeDirectoryFailed)
}

func TestApp_MetaData(t *testing.T) {
	f := newFixture(t)

	info, err := f.app.MetaData(context.Background(), filepath.Join(f.dir, "pts.csv"), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.LocalHost, info.File.Host)
	assert.Equal(t, "pts.csv", info.File.Filename)
	require.NotNil(t, info.MetaData)
	assert.Equal(t, 1, info.MetaData.NumStates)
	require.NotNil(t, info.SIL)
	assert.NotEmpty(t, info.SIL.Sets)
}

func TestApp_MetaDataInvalidFile(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.MetaData(context.Background(), "", 0)
	require.ErrorIs(t, err, domain.ErrInvalidFile)
}

func TestApp_Query(t *testing.T) {
	f := newFixture(t)

	res, err := f.app.Query(context.Background(), app.QueryOptions{
		Host:     "localhost",
		File:     filepath.Join(f.dir, "pts.csv"),
		Variable: "v",
		Name:     domain.QueryMax,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{90}, res.Values)
}

func TestApp_QueryUnknownVariable(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Query(context.Background(), app.QueryOptions{
		File:     filepath.Join(f.dir, "pts.csv"),
		Variable: "pressure",
		Name:     domain.QueryMax,
	})
	require.ErrorIs(t, err, domain.ErrInvalidVariable)
}

const frontView = `view:
  camera: [0, 0, 10]
  viewUp: [0, 1, 0]
  viewAngle: 30
  nearPlane: 0.1
  farPlane: 100
`

func TestApp_Transform(t *testing.T) {
	f := newFixture(t)

	res, err := f.app.Transform(writeYAML(t, f.dir, "view.yaml", frontView))
	require.NoError(t, err)
	assert.False(t, res.Tightened)
	assert.NotZero(t, res.Matrix.At(3, 2))

	res, err = f.app.Transform(writeYAML(t, f.dir, "tight.yaml", frontView+"bounds: [-1, 1, -1, 1, -1, 1]\n"))
	require.NoError(t, err)
	assert.True(t, res.Tightened)
	assert.Greater(t, res.View.NearPlane, 0.1)
	assert.Less(t, res.View.FarPlane, 100.0)
}

func TestApp_TransformErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Transform(filepath.Join(f.dir, "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrInvalidFile)

	_, err = f.app.Transform(writeYAML(t, f.dir, "bad.yaml", "view: [1, 2"))
	require.ErrorIs(t, err, domain.ErrInvalidFile)

	_, err = f.app.Transform(writeYAML(t, f.dir, "flat.yaml", strings.Replace(frontView, "farPlane: 100", "farPlane: 0.05", 1)))
	require.ErrorIs(t, err, domain.ErrDegenerateView)
}

func TestApp_Cull(t *testing.T) {
	f := newFixture(t)
	view := writeYAML(t, f.dir, "view.yaml", frontView)
	extents := writeYAML(t, f.dir, "extents.yaml", `domains:
  - [-1, 1, -1, 1, -1, 1]
  - [500, 501, 500, 501, 0, 1]
  - [0, 0.5, 0, 0.5, 0, 0.5]
`)

	domains, err := f.app.Cull(view, extents)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, domains)
}

func TestApp_RunSession(t *testing.T) {
	f := newFixture(t)
	f.watcher.EXPECT().Start(gomock.Any(), f.dir).Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(func(ports.WatchEvent) bool) {}))
	f.watcher.EXPECT().Stop().Return(nil)

	var saved domain.FileServerSettings
	f.loader.EXPECT().SaveFileServer(f.dir, gomock.Any()).
		DoAndReturn(func(_ string, s domain.FileServerSettings) error {
			saved = s
			return nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := f.app.RunSession(ctx, app.SessionOptions{
		Hosts:       []string{"localhost"},
		Watch:       f.dir,
		MetricsAddr: "127.0.0.1:0",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LocalHost, saved.Host)
}

func TestApp_Serve(t *testing.T) {
	f := newFixture(t)
	var lc net.ListenConfig
	lis, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- f.app.Serve(ctx, app.ServeOptions{Listener: lis, Key: "secret", Role: domain.RoleMetaData})
	}()

	client, err := rpc.Dial(lis.Addr().String(), "secret")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	resp, err := client.Handshake(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMetaData, resp.Role)
	assert.Equal(t, os.Getpid(), resp.PID)

	cancel()
	require.NoError(t, <-done)
}
