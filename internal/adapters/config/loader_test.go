package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/adapters/config"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	l := config.NewLoader(log)
	l.Home = t.TempDir()
	return l, log
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

const fullConfig = `
version: "1"
engine:
  numRestarts: 0
  retryDelay: 250ms
  launchTimeout: 1m
  keepAliveInterval: 30s
  arguments: ["-debug", "2"]
  precision: double
  backend: accelerated
  removeDuplicateNodes: true
  defaultFileOpenOptions:
    csv.delimiter: ";"
  treatAllDatabasesAsTimeVarying: true
  remotePortBase: 7000
cache:
  metadataSize: 10
  silSize: 5
hosts:
  - name: serial
    host: HPC
  - name: batch
    host: hpc
    parallel: true
    numProcs: 64
    launchMethod: sbatch
    shareBatchJob: true
fileServer:
  host: hpc
  path: /scratch
  filter: "*.csv"
  useCurrentDir: true
  recentPaths:
    hpc: "/scratch/a%32b /scratch"
`

func TestLoader_Load_Full(t *testing.T) {
	l, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, fullConfig)

	cfg, err := l.Load(dir)
	require.NoError(t, err)

	e := cfg.Engine
	assert.Equal(t, 0, e.NumRestarts)
	assert.Equal(t, 250*time.Millisecond, e.RetryDelay)
	assert.Equal(t, time.Minute, e.LaunchTimeout)
	assert.Equal(t, 30*time.Second, e.KeepAliveInterval)
	assert.Equal(t, []string{"-debug", "2"}, e.Arguments)
	assert.True(t, e.TreatAllDatabasesAsTimeVarying)
	assert.Equal(t, 7000, e.RemotePortBase)
	assert.Equal(t, domain.PrecisionDouble, e.Settings.Precision)
	assert.Equal(t, domain.BackendAccelerated, e.Settings.Backend)
	assert.True(t, e.Settings.RemoveDuplicateNodes)
	assert.Equal(t, map[string]string{"csv.delimiter": ";"}, e.Settings.FileOpenOptions)

	assert.Equal(t, domain.CacheConfig{MetaDataSize: 10, SILSize: 5}, cfg.Cache)

	require.Len(t, cfg.Profiles, 2)
	assert.Equal(t, "hpc", cfg.Profiles[0].Host)
	assert.Equal(t, 1, cfg.Profiles[0].NumProcs)
	assert.True(t, cfg.Profiles[1].IsSchedulerLaunch())
	assert.True(t, cfg.Profiles[1].ShareBatchJob)

	fs := cfg.FileServer
	assert.Equal(t, "hpc", fs.Host)
	assert.Equal(t, "/scratch", fs.Path)
	assert.Equal(t, "*.csv", fs.Filter)
	assert.True(t, fs.UseCurrentDir)
	assert.True(t, fs.AutomaticFileGrouping, "unset flags keep their defaults")
	assert.Equal(t, []string{"/scratch/a b", "/scratch"}, fs.RecentPaths["hpc"])
}

func TestLoader_Load_Defaults(t *testing.T) {
	l, _ := newLoader(t)

	cfg, err := l.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Discovery(t *testing.T) {
	t.Run("parent directory", func(t *testing.T) {
		l, _ := newLoader(t)
		root := t.TempDir()
		createFile(t, root, domain.ConfigFileName, "version: \"1\"\ncache:\n  metadataSize: 7\n")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

		cfg, err := l.Load(nested)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Cache.MetaDataSize)
		assert.Equal(t, filepath.Join(root, domain.ConfigFileName), l.Path(nested))
	})

	t.Run("home fallback", func(t *testing.T) {
		l, _ := newLoader(t)
		createFile(t, l.Home, filepath.Join(domain.VisitDirName, domain.ConfigFileName),
			"engine:\n  numRestarts: 5\n")

		cfg, err := l.Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Engine.NumRestarts)
	})
}

func TestLoader_Load_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"bad yaml", "engine: [", domain.ErrConfigParseFailed},
		{"unsupported version", "version: \"2\"", domain.ErrConfigParseFailed},
		{"negative restarts", "engine:\n  numRestarts: -1", domain.ErrConfigParseFailed},
		{"bad duration", "engine:\n  launchTimeout: soon", domain.ErrConfigParseFailed},
		{"bad precision", "engine:\n  precision: half", domain.ErrConfigParseFailed},
		{"bad backend", "engine:\n  backend: gpu", domain.ErrConfigParseFailed},
		{"negative cache", "cache:\n  silSize: -3", domain.ErrConfigParseFailed},
		{"profile without host", "hosts:\n  - name: x", domain.ErrConfigParseFailed},
		{"unknown launch method", "hosts:\n  - host: a\n    launchMethod: pbs", domain.ErrConfigParseFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newLoader(t)
			dir := t.TempDir()
			createFile(t, dir, domain.ConfigFileName, tt.content)

			_, err := l.Load(dir)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoader_Load_UnnamedProfileWarns(t *testing.T) {
	l, log := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "hosts:\n  - host: a\n")

	log.EXPECT().Warn(gomock.Any())

	cfg, err := l.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "profile0", cfg.Profiles[0].Name)
}

func TestLoader_SaveFileServer(t *testing.T) {
	l, log := newLoader(t)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	dir := t.TempDir()
	path := createFile(t, dir, domain.ConfigFileName, "# site settings\nversion: \"1\"\ncache:\n  metadataSize: 9\n")

	s := domain.DefaultFileServerSettings()
	s.Host = "hpc"
	s.Path = "/scratch/my runs"
	s.AddRecentPath("hpc", "/scratch", 10)
	s.AddRecentPath("hpc", "/scratch/my runs", 10)
	require.NoError(t, l.SaveFileServer(dir, s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# site settings")
	assert.Contains(t, string(raw), "/scratch/my%32runs /scratch")

	cfg, err := l.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Cache.MetaDataSize, "other sections survive")
	assert.Equal(t, s, cfg.FileServer)

	s.Filter = "*.vtk"
	require.NoError(t, l.SaveFileServer(dir, s))
	cfg, err = l.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "*.vtk", cfg.FileServer.Filter)
}

func TestLoader_SaveFileServer_CreatesFile(t *testing.T) {
	l, log := newLoader(t)
	log.EXPECT().Info(gomock.Any())
	dir := t.TempDir()

	require.NoError(t, l.SaveFileServer(dir, domain.DefaultFileServerSettings()))

	cfg, err := l.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFileServerSettings(), cfg.FileServer)
}
