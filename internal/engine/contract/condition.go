package contract

import (
	"strconv"
	"strings"

	"go.trai.ch/visit/internal/core/domain"
)

// FocusCondition returns the filter selecting elements inside every extent,
// e.g. "(a>0)&&(a<1)&&(b>2)&&(b<3)". No extents yield the empty condition.
func FocusCondition(extents []domain.AxisExtent) string {
	parts := make([]string, 0, len(extents))
	for _, e := range extents {
		parts = append(parts,
			"("+e.Variable+">"+formatBound(e.Min)+")&&("+e.Variable+"<"+formatBound(e.Max)+")")
	}
	return strings.Join(parts, "&&")
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
