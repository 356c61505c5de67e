package contract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports/mocks"
	"go.trai.ch/visit/internal/engine/contract"
	"go.uber.org/mock/gomock"
)

func histogramFor(req domain.HistogramRequest) *domain.Histogram2D {
	h := domain.NewHistogram2D(req.XVar, req.YVar,
		domain.RegularBoundaries(0, 1, req.XBins), domain.RegularBoundaries(0, 1, req.YBins))
	h.Condition = req.Condition
	h.Add(0, 0, 1)
	return h
}

func axesSettings() domain.ParallelAxesSettings {
	return domain.ParallelAxesSettings{
		Axes:        []string{"a", "b", "c"},
		ContextBins: 4,
		FocusBins:   8,
	}
}

func TestNegotiator_HistogramPath(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockHistogramSource(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	var reqs []domain.HistogramRequest
	source.EXPECT().Histogram(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.HistogramRequest) (*domain.Histogram2D, error) {
			reqs = append(reqs, req)
			return histogramFor(req), nil
		},
	).Times(2 * 2)

	in := domain.NewContract("a", []int{0, 1, 2})
	in.TimeStates = []int{3, 4}

	n := contract.NewNegotiator(source, logger, axesSettings())
	assert.Equal(t, contract.AwaitingContract, n.State())

	out, err := n.ModifyContract(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, contract.ContractFinalized, n.State())
	assert.True(t, n.UsedHistograms())
	assert.True(t, out.DomainsRestricted)
	assert.Equal(t, []int{}, out.Domains)
	assert.False(t, out.Streaming)
	assert.True(t, in.Streaming, "incoming contract must not be modified")

	hists := n.ContextHistograms()
	require.Len(t, hists, 2)
	assert.True(t, hists.Complete(2))
	assert.Nil(t, n.FocusHistograms())

	assert.Equal(t, "a", reqs[0].XVar)
	assert.Equal(t, "b", reqs[0].YVar)
	assert.Equal(t, "c", reqs[1].YVar)
	assert.Equal(t, 4, reqs[0].XBins)
	assert.Equal(t, 3, reqs[0].TimeStep)
	assert.Equal(t, 4, reqs[3].TimeStep)
}

func TestNegotiator_FocusHistograms(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockHistogramSource(ctrl)

	source.EXPECT().Histogram(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.HistogramRequest) (*domain.Histogram2D, error) {
			return histogramFor(req), nil
		},
	).Times(4)

	settings := axesSettings()
	settings.Extents = []domain.AxisExtent{{Variable: "b", Min: 0.25, Max: 0.5}}

	n := contract.NewNegotiator(source, mocks.NewMockLogger(ctrl), settings)
	_, err := n.ModifyContract(context.Background(), domain.NewContract("a", nil))
	require.NoError(t, err)

	focus := n.FocusHistograms()
	require.Len(t, focus, 1)
	require.True(t, focus.Complete(2))
	assert.Equal(t, "(b>0.25)&&(b<0.5)", focus[0][0].Condition)
	assert.Equal(t, 8, focus[0][0].XBins())
	assert.Equal(t, 4, n.ContextHistograms()[0][1].XBins())
}

func TestNegotiator_FallbackOnAnyFailure(t *testing.T) {
	t.Parallel()

	// Fail each of the four requests in turn; the outcome must never be partial.
	for failAt := range 4 {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockHistogramSource(ctrl)
		logger := mocks.NewMockLogger(ctrl)

		calls := 0
		source.EXPECT().Histogram(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.HistogramRequest) (*domain.Histogram2D, error) {
				defer func() { calls++ }()
				if calls == failAt {
					return nil, domain.ErrHistogramUnavailable
				}
				return histogramFor(req), nil
			},
		).MinTimes(1)
		logger.EXPECT().Warn(gomock.Any()).Times(1)

		settings := axesSettings()
		settings.AlwaysDrawLines = true

		in := domain.NewContract("a", []int{0, 1})
		n := contract.NewNegotiator(source, logger, settings)
		out, err := n.ModifyContract(context.Background(), in)
		require.NoError(t, err)

		assert.False(t, n.UsedHistograms())
		assert.Nil(t, n.ContextHistograms())
		assert.Nil(t, n.FocusHistograms())
		assert.False(t, out.DomainsRestricted)
		assert.Equal(t, []int{0, 1}, out.Domains)
		assert.False(t, out.Streaming)
		assert.Equal(t, contract.ContractFinalized, n.State())
	}
}

func TestNegotiator_DirectTraversal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contract func() *domain.Contract
		settings func() domain.ParallelAxesSettings
	}{
		{
			name: "zones not preserved",
			contract: func() *domain.Contract {
				c := domain.NewContract("a", nil)
				c.ZonesPreserved = false
				return c
			},
			settings: axesSettings,
		},
		{
			name: "non-scalar variable",
			contract: func() *domain.Contract {
				c := domain.NewContract("a", nil)
				c.ScalarVariable = false
				return c
			},
			settings: axesSettings,
		},
		{
			name:     "full data focus forced",
			contract: func() *domain.Contract { return domain.NewContract("a", nil) },
			settings: func() domain.ParallelAxesSettings {
				s := axesSettings()
				s.ForceFullDataFocus = true
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			source := mocks.NewMockHistogramSource(ctrl)

			n := contract.NewNegotiator(source, mocks.NewMockLogger(ctrl), tt.settings())
			out, err := n.ModifyContract(context.Background(), tt.contract())
			require.NoError(t, err)
			assert.False(t, n.UsedHistograms())
			assert.False(t, out.DomainsRestricted)
			assert.False(t, out.Streaming)
		})
	}
}

func TestNegotiator_TooManyTimeSteps(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	in := domain.NewContract("a", nil)
	in.TimeStates = make([]int, contract.MaxTimeSteps+1)

	n := contract.NewNegotiator(mocks.NewMockHistogramSource(ctrl), mocks.NewMockLogger(ctrl), axesSettings())
	_, err := n.ModifyContract(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrTooManyTimeSteps)
}

func TestNegotiator_CancelledContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockHistogramSource(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	source.EXPECT().Histogram(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.HistogramRequest) (*domain.Histogram2D, error) {
			cancel()
			return nil, errors.New("aborted")
		},
	)

	n := contract.NewNegotiator(source, mocks.NewMockLogger(ctrl), axesSettings())
	_, err := n.ModifyContract(ctx, domain.NewContract("a", nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, n.ContextHistograms())
}

func TestFocusCondition(t *testing.T) {
	t.Parallel()

	assert.Empty(t, contract.FocusCondition(nil))
	assert.Equal(t,
		"(x>-1)&&(x<2.5)&&(y>1e-09)&&(y<100)",
		contract.FocusCondition([]domain.AxisExtent{
			{Variable: "x", Min: -1, Max: 2.5},
			{Variable: "y", Min: 1e-9, Max: 100},
		}),
	)
}
