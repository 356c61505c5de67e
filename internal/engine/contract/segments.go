package contract

import "go.trai.ch/visit/internal/core/domain"

// Segment is one weighted line between two adjacent axes. Axis positions are
// the axis indices; values are bin centers.
type Segment struct {
	Axis   int
	From   float64
	To     float64
	Weight int64
}

// BinSegments turns every non-empty bin of the histogram between axis and
// axis+1 into a segment.
func BinSegments(h *domain.Histogram2D, axis int) []Segment {
	if h == nil {
		return nil
	}
	var segs []Segment
	for i := range h.XBins() {
		from := (h.XBoundaries[i] + h.XBoundaries[i+1]) / 2
		for j := range h.YBins() {
			n := h.Count(i, j)
			if n == 0 {
				continue
			}
			segs = append(segs, Segment{
				Axis:   axis,
				From:   from,
				To:     (h.YBoundaries[j] + h.YBoundaries[j+1]) / 2,
				Weight: n,
			})
		}
	}
	return segs
}

// SetSegments returns the segments of every histogram in set.
func SetSegments(set domain.HistogramSet) []Segment {
	var segs []Segment
	for k, h := range set {
		segs = append(segs, BinSegments(h, k)...)
	}
	return segs
}
