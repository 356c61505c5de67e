package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/engine/contract"
)

func TestBinSegments(t *testing.T) {
	t.Parallel()

	h := domain.NewHistogram2D("a", "b", []float64{0, 2, 4}, []float64{10, 20})
	h.Add(1, 0, 3)

	assert.Equal(t, []contract.Segment{{Axis: 2, From: 3, To: 15, Weight: 3}}, contract.BinSegments(h, 2))
	assert.Nil(t, contract.BinSegments(nil, 0))
}

func TestSetSegments(t *testing.T) {
	t.Parallel()

	a := domain.NewHistogram2D("a", "b", []float64{0, 1}, []float64{0, 1})
	a.Add(0, 0, 1)
	b := domain.NewHistogram2D("b", "c", []float64{0, 1}, []float64{0, 1})
	b.Add(0, 0, 2)

	segs := contract.SetSegments(domain.HistogramSet{a, b})
	assert.Len(t, segs, 2)
	assert.Equal(t, 1, segs[1].Axis)
	assert.Equal(t, int64(2), segs[1].Weight)
}
