package domain

import "slices"

// HistogramRequest asks a data source for a joint histogram of two variables.
type HistogramRequest struct {
	XVar  string  `json:"xVar"`
	YVar  string  `json:"yVar"`
	XBins int     `json:"xBins"`
	YBins int     `json:"yBins"`
	XMin  float64 `json:"xMin"`
	XMax  float64 `json:"xMax"`
	YMin  float64 `json:"yMin"`
	YMax  float64 `json:"yMax"`
	// UseBounds selects XMin..YMax instead of the variables' own extents.
	UseBounds bool `json:"useBounds"`
	// Condition restricts the counted elements, e.g. "(a>0)&&(a<1)".
	Condition      string `json:"condition,omitempty"`
	Exact          bool   `json:"exact"`
	RegularBinning bool   `json:"regularBinning"`
	TimeStep       int    `json:"timeStep"`
}

// Histogram2D is a joint histogram of two variables.
type Histogram2D struct {
	XVar        string    `json:"xVar"`
	YVar        string    `json:"yVar"`
	XBoundaries []float64 `json:"xBoundaries"`
	YBoundaries []float64 `json:"yBoundaries"`
	// Counts is stored row-major by x bin.
	Counts    []int64 `json:"counts"`
	Condition string  `json:"condition,omitempty"`
}

// NewHistogram2D allocates an empty histogram with the given boundaries.
func NewHistogram2D(xVar, yVar string, xBounds, yBounds []float64) *Histogram2D {
	nx, ny := max(len(xBounds)-1, 0), max(len(yBounds)-1, 0)
	return &Histogram2D{
		XVar:        xVar,
		YVar:        yVar,
		XBoundaries: slices.Clone(xBounds),
		YBoundaries: slices.Clone(yBounds),
		Counts:      make([]int64, nx*ny),
	}
}

// RegularBoundaries returns n+1 evenly spaced boundaries from lo to hi.
func RegularBoundaries(lo, hi float64, n int) []float64 {
	b := make([]float64, n+1)
	for i := range b {
		b[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	b[n] = hi
	return b
}

// XBins returns the number of bins along x.
func (h *Histogram2D) XBins() int { return max(len(h.XBoundaries)-1, 0) }

// YBins returns the number of bins along y.
func (h *Histogram2D) YBins() int { return max(len(h.YBoundaries)-1, 0) }

// Count returns the count of bin (i, j).
func (h *Histogram2D) Count(i, j int) int64 {
	return h.Counts[i*h.YBins()+j]
}

// Add increments bin (i, j) by n.
func (h *Histogram2D) Add(i, j int, n int64) {
	h.Counts[i*h.YBins()+j] += n
}

// Total returns the sum of all bins.
func (h *Histogram2D) Total() int64 {
	var t int64
	for _, c := range h.Counts {
		t += c
	}
	return t
}

// Clone returns a deep copy of h.
func (h *Histogram2D) Clone() *Histogram2D {
	if h == nil {
		return nil
	}
	c := *h
	c.XBoundaries = slices.Clone(h.XBoundaries)
	c.YBoundaries = slices.Clone(h.YBoundaries)
	c.Counts = slices.Clone(h.Counts)
	return &c
}

// HistogramSet holds one histogram per consecutive axis pair for one time step.
type HistogramSet []*Histogram2D

// Histograms holds a HistogramSet per time step. A nil entry means the
// time step has no histograms on this process.
type Histograms []HistogramSet

// Complete reports whether every time step has a full set of pairs histograms.
func (h Histograms) Complete(pairs int) bool {
	for _, set := range h {
		if len(set) != pairs {
			return false
		}
		for _, hist := range set {
			if hist == nil {
				return false
			}
		}
	}
	return true
}
