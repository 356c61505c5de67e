package localengine_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/adapters/localengine"
	"go.trai.ch/visit/internal/adapters/rpc"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var _ rpc.Backend = (*localengine.Engine)(nil)

// points writes ten rows x=i, v=10i to dir/name.
func points(t *testing.T, dir, name string, scale int) {
	t.Helper()
	var b strings.Builder
	b.WriteString("x,y,z,v\n")
	for i := range 10 {
		fmt.Fprintf(&b, "%d,0,0,%d\n", i, i*scale)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(b.String()), domain.FilePerm))
}

func newEngine(t *testing.T, procs int) (*localengine.Engine, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	e, err := localengine.New(localengine.Options{Procs: procs, RowsPerDomain: 4, Logger: log})
	require.NoError(t, err)

	dir := t.TempDir()
	points(t, dir, "pts.csv", 10)
	require.NoError(t, e.ChangeDirectory(context.Background(), dir))
	return e, dir
}

func plot(t *testing.T, e *localengine.Engine, req domain.MakePlotRequest, ops ...domain.ApplyOperatorRequest) int {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.OpenDatabase(ctx, domain.OpenDatabaseRequest{File: "pts.csv"}))
	for _, op := range ops {
		require.NoError(t, e.ApplyOperator(ctx, op))
	}
	id, err := e.MakePlot(ctx, req)
	require.NoError(t, err)
	return id
}

var pseudocolor = domain.MakePlotRequest{PlotType: domain.PlotPseudocolor, Variable: "v"}

func TestNew_RequiresLogger(t *testing.T) {
	_, err := localengine.New(localengine.Options{})
	assert.Error(t, err)
}

func TestEngine_Properties(t *testing.T) {
	e, _ := newEngine(t, 2)
	ctx := context.Background()

	require.NoError(t, e.SendKeepAlive(ctx))
	props, err := e.GetEngineProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEngine, props.Role)
	assert.Equal(t, 2, props.NumProcessors)
	assert.Equal(t, domain.ProtocolVersion, props.Version)
	assert.Equal(t, os.Getpid(), props.PID)

	settings := domain.DefaultGlobalSettings()
	settings.Precision = domain.PrecisionDouble
	require.NoError(t, e.SetGlobalSettings(ctx, settings))
	assert.Equal(t, domain.PrecisionDouble, e.Settings().Precision)
}

func TestEngine_ExecuteDirect(t *testing.T) {
	e, _ := newEngine(t, 1)
	id := plot(t, e, pseudocolor)

	res, err := e.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, res.NetworkID)
	assert.Equal(t, 10, res.NumRows)
	assert.False(t, res.UsedHistograms)
	assert.Equal(t, []int{0, 1, 2}, res.Contract.Domains)
	assert.True(t, res.Contract.ZonesPreserved)
	assert.Equal(t, 1, res.NumTimeSteps)
}

func TestEngine_Operators(t *testing.T) {
	e, _ := newEngine(t, 1)
	ctx := context.Background()

	id := plot(t, e, pseudocolor, domain.ApplyOperatorRequest{
		Operator:   localengine.OperatorThreshold,
		Attributes: map[string]string{"variable": "v", "lower": "20", "upper": "50"},
	})
	res, err := e.Execute(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, res.NumRows)
	assert.False(t, res.Contract.ZonesPreserved)

	id = plot(t, e, pseudocolor, domain.ApplyOperatorRequest{
		Operator:   localengine.OperatorDomainSubset,
		Attributes: map[string]string{"domains": "2,0"},
	})
	res, err = e.Execute(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 6, res.NumRows)
	assert.True(t, res.Contract.DomainsRestricted)
	assert.Equal(t, []int{0, 2}, res.Contract.Domains)
}

func TestEngine_OperatorErrors(t *testing.T) {
	e, _ := newEngine(t, 1)
	ctx := context.Background()

	err := e.ApplyOperator(ctx, domain.ApplyOperatorRequest{Operator: localengine.OperatorThreshold})
	require.ErrorIs(t, err, domain.ErrNoOpenDatabase)
	_, err = e.MakePlot(ctx, pseudocolor)
	require.ErrorIs(t, err, domain.ErrNoOpenDatabase)

	require.NoError(t, e.OpenDatabase(ctx, domain.OpenDatabaseRequest{File: "pts.csv"}))
	err = e.ApplyOperator(ctx, domain.ApplyOperatorRequest{Operator: "Slice"})
	require.ErrorIs(t, err, domain.ErrUnknownOperator)
	err = e.ApplyOperator(ctx, domain.ApplyOperatorRequest{
		Operator:   localengine.OperatorThreshold,
		Attributes: map[string]string{"variable": "pressure"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidVariable)
	err = e.ApplyOperator(ctx, domain.ApplyOperatorRequest{
		Operator:   localengine.OperatorDomainSubset,
		Attributes: map[string]string{"domains": "7"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidCondition)

	_, err = e.MakePlot(ctx, domain.MakePlotRequest{PlotType: domain.PlotPseudocolor, Variable: "pressure"})
	require.ErrorIs(t, err, domain.ErrInvalidVariable)
	_, err = e.MakePlot(ctx, domain.MakePlotRequest{
		PlotType: domain.PlotParallelCoordinates,
		Parallel: &domain.ParallelAxesSettings{Axes: []string{"x"}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidVariable)

	err = e.OpenDatabase(ctx, domain.OpenDatabaseRequest{File: "missing.csv"})
	require.ErrorIs(t, err, domain.ErrInvalidFile)

	_, err = e.Execute(ctx, 99)
	require.ErrorIs(t, err, domain.ErrInvalidNetwork)
}

func TestEngine_ParallelCoordinatesUseHistograms(t *testing.T) {
	e, _ := newEngine(t, 2)
	id := plot(t, e, domain.MakePlotRequest{
		PlotType: domain.PlotParallelCoordinates,
		Parallel: &domain.ParallelAxesSettings{Axes: []string{"x", "v"}},
	})

	res, err := e.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, res.UsedHistograms)
	assert.Equal(t, 10, res.NumRows)
	assert.Equal(t, 10, res.NumSegments)
	assert.Empty(t, res.Contract.Domains)
	assert.True(t, res.Contract.DomainsRestricted)
	assert.False(t, res.Contract.Streaming)
}

func TestEngine_ParallelCoordinatesAfterThresholdTraverse(t *testing.T) {
	e, _ := newEngine(t, 2)
	id := plot(t, e, domain.MakePlotRequest{
		PlotType: domain.PlotParallelCoordinates,
		Parallel: &domain.ParallelAxesSettings{Axes: []string{"x", "v"}},
	}, domain.ApplyOperatorRequest{
		Operator:   localengine.OperatorThreshold,
		Attributes: map[string]string{"variable": "x", "upper": "4"},
	})

	res, err := e.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, res.UsedHistograms)
	assert.Equal(t, 5, res.NumRows)
	assert.Equal(t, []int{0, 1, 2}, res.Contract.Domains)
	assert.False(t, res.Contract.Streaming)
}

func farView() domain.ViewInfo {
	v := domain.DefaultViewInfo()
	v.CameraPosition = [3]float64{4.5, 0, 100}
	v.Focus = [3]float64{4.5, 0, 0}
	v.FarPlane = 200
	return v
}

func TestEngine_Render(t *testing.T) {
	e, _ := newEngine(t, 1)
	ctx := context.Background()
	all := plot(t, e, pseudocolor)
	subset := plot(t, e, pseudocolor, domain.ApplyOperatorRequest{
		Operator:   localengine.OperatorDomainSubset,
		Attributes: map[string]string{"domains": "1"},
	})

	view := farView()
	res, err := e.Render(ctx, domain.RenderRequest{
		WindowID:   3,
		NetworkIDs: []int{all, subset},
		View:       view,
		Width:      400,
		Height:     300,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.WindowID)
	assert.Equal(t, map[int][]int{all: {0, 1, 2}, subset: {1}}, res.VisibleDomains)
	assert.GreaterOrEqual(t, res.View.NearPlane, view.NearPlane)
	assert.LessOrEqual(t, res.View.FarPlane, view.FarPlane)
	assert.NotEqual(t, [16]float64{}, res.Transform)

	view.ViewUp = [3]float64{0, 0, 1}
	_, err = e.Render(ctx, domain.RenderRequest{NetworkIDs: []int{all}, View: view})
	require.ErrorIs(t, err, domain.ErrDegenerateView)

	_, err = e.Render(ctx, domain.RenderRequest{NetworkIDs: []int{42}, View: farView()})
	require.ErrorIs(t, err, domain.ErrInvalidNetwork)
}

func TestEngine_Pick(t *testing.T) {
	e, _ := newEngine(t, 1)
	ctx := context.Background()
	id := plot(t, e, pseudocolor)

	res, err := e.Pick(ctx, domain.PickRequest{NetworkID: id, Domain: 1, Element: 2, Variables: []string{"x", "v"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 6, "v": 60}, res.Values)

	res, err = e.Pick(ctx, domain.PickRequest{NetworkID: id, Domain: 0, Element: 0})
	require.NoError(t, err)
	assert.Len(t, res.Values, 4)

	_, err = e.Pick(ctx, domain.PickRequest{NetworkID: id, Domain: 0, Element: 4})
	require.ErrorIs(t, err, domain.ErrInvalidNetwork)
	_, err = e.Pick(ctx, domain.PickRequest{NetworkID: id, Domain: 2, Element: 3})
	require.ErrorIs(t, err, domain.ErrInvalidNetwork)
	_, err = e.Pick(ctx, domain.PickRequest{NetworkID: id, Variables: []string{"pressure"}})
	require.ErrorIs(t, err, domain.ErrInvalidVariable)
}

func TestEngine_Query(t *testing.T) {
	e, _ := newEngine(t, 1)
	ctx := context.Background()
	id := plot(t, e, pseudocolor)

	tests := []struct {
		name     string
		variable string
		want     float64
	}{
		{domain.QueryNumRows, "", 10},
		{domain.QuerySum, "", 450},
		{domain.QueryMin, "", 0},
		{domain.QueryMax, "x", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Query(ctx, domain.QueryRequest{NetworkID: id, Name: tt.name, Variable: tt.variable})
			require.NoError(t, err)
			assert.Equal(t, []float64{tt.want}, res.Values)
			assert.NotEmpty(t, res.Message)
		})
	}

	_, err := e.Query(ctx, domain.QueryRequest{NetworkID: id, Name: "Volume"})
	require.ErrorIs(t, err, domain.ErrUnknownQuery)
	_, err = e.Query(ctx, domain.QueryRequest{NetworkID: id, Name: domain.QuerySum, Variable: "pressure"})
	require.ErrorIs(t, err, domain.ErrInvalidVariable)
}

func TestEngine_ReleaseData(t *testing.T) {
	e, _ := newEngine(t, 1)
	ctx := context.Background()
	id := plot(t, e, pseudocolor)

	require.NoError(t, e.ReleaseData(ctx, id))
	_, err := e.Execute(ctx, id)
	require.ErrorIs(t, err, domain.ErrInvalidNetwork)
	require.ErrorIs(t, e.ReleaseData(ctx, id), domain.ErrInvalidNetwork)
}

func TestEngine_LaunchProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockProcessLauncher(ctrl)
	req := domain.ProcessLaunchRequest{Program: "visit", Arguments: []string{"engine", "serve"}}
	spawner.EXPECT().LaunchProcess(gomock.Any(), req).Return(nil)

	e, err := localengine.New(localengine.Options{Spawner: spawner, Logger: mocks.NewMockLogger(ctrl)})
	require.NoError(t, err)
	require.NoError(t, e.LaunchProcess(context.Background(), req))

	bare, err := localengine.New(localengine.Options{Logger: mocks.NewMockLogger(ctrl)})
	require.NoError(t, err)
	require.ErrorIs(t, bare.LaunchProcess(context.Background(), req), domain.ErrSpawnFailed)
}
