package localengine

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// stateLoader returns the table and domains of one time state.
type stateLoader func(ctx context.Context, state int) (*Table, *Domains, error)

// histogramSource bins the rows of the domains one rank owns. Domain d
// belongs to rank d mod size.
type histogramSource struct {
	load    stateLoader
	domains []int
	rank    int
	size    int
}

// Histogram implements ports.HistogramSource.
func (s *histogramSource) Histogram(ctx context.Context, req domain.HistogramRequest) (*domain.Histogram2D, error) {
	t, doms, err := s.load(ctx, req.TimeStep)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrHistogramUnavailable, err.Error()), "time_step", req.TimeStep)
	}
	xc, ok := t.Column(req.XVar)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrHistogramUnavailable, "unknown variable"), "variable", req.XVar)
	}
	yc, ok := t.Column(req.YVar)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrHistogramUnavailable, "unknown variable"), "variable", req.YVar)
	}
	if req.XBins <= 0 || req.YBins <= 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrHistogramUnavailable, "no bins"),
			"x_bins", req.XBins), "y_bins", req.YBins)
	}
	cond, err := ParseCondition(req.Condition, t)
	if err != nil {
		return nil, err
	}

	xlo, xhi, ylo, yhi := req.XMin, req.XMax, req.YMin, req.YMax
	if !req.UseBounds {
		all := t.AllRows()
		xlo, xhi = t.Range(xc, all)
		ylo, yhi = t.Range(yc, all)
	}
	xhi, yhi = widen(xlo, xhi), widen(ylo, yhi)

	h := domain.NewHistogram2D(req.XVar, req.YVar,
		domain.RegularBoundaries(xlo, xhi, req.XBins),
		domain.RegularBoundaries(ylo, yhi, req.YBins))
	h.Condition = req.Condition

	for _, d := range s.domains {
		if d%s.size != s.rank || d >= doms.LeafCount() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, r := range doms.Rows(d) {
			row := t.Rows[r]
			if !cond.Holds(row) {
				continue
			}
			i, iok := bin(row[xc], xlo, xhi, req.XBins)
			j, jok := bin(row[yc], ylo, yhi, req.YBins)
			if iok && jok {
				h.Add(i, j, 1)
			}
		}
	}
	return h, nil
}

// widen gives a constant variable a unit-wide range.
func widen(lo, hi float64) float64 {
	if hi <= lo {
		return lo + 1
	}
	return hi
}

func bin(v, lo, hi float64, n int) (int, bool) {
	if v < lo || v > hi {
		return 0, false
	}
	i := int((v - lo) / (hi - lo) * float64(n))
	return min(i, n-1), true
}
