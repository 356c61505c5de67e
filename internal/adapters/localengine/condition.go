package localengine

import (
	"strconv"
	"strings"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

type comparison struct {
	column int
	op     string
	value  float64
}

func (c comparison) holds(row []float64) bool {
	v := row[c.column]
	switch c.op {
	case ">":
		return v > c.value
	case "<":
		return v < c.value
	case ">=":
		return v >= c.value
	case "<=":
		return v <= c.value
	default:
		return v == c.value
	}
}

// Condition is a conjunction of comparisons such as "(a>0)&&(b<=1)".
type Condition []comparison

// Holds reports whether row satisfies every comparison.
func (c Condition) Holds(row []float64) bool {
	for _, cmp := range c {
		if !cmp.holds(row) {
			return false
		}
	}
	return true
}

// ParseCondition parses expr against the columns of t. The empty
// expression accepts every row.
func ParseCondition(expr string, t *Table) (Condition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	var cond Condition
	for _, term := range strings.Split(expr, "&&") {
		c, err := parseComparison(term, t)
		if err != nil {
			return nil, zerr.With(err, "condition", expr)
		}
		cond = append(cond, c)
	}
	return cond, nil
}

func parseComparison(term string, t *Table) (comparison, error) {
	term = strings.TrimSpace(term)
	term = strings.TrimSuffix(strings.TrimPrefix(term, "("), ")")

	i := strings.IndexAny(term, "<>=")
	if i <= 0 {
		return comparison{}, zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "missing operator"), "term", term)
	}
	op := term[i : i+1]
	if i+1 < len(term) && term[i+1] == '=' {
		op = term[i : i+2]
	}
	if op == "=" {
		return comparison{}, zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "unknown operator"), "term", term)
	}

	name := strings.TrimSpace(term[:i])
	col, ok := t.Column(name)
	if !ok {
		return comparison{}, zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "unknown variable"), "variable", name)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(term[i+len(op):]), 64)
	if err != nil {
		return comparison{}, zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "bad number"), "term", term)
	}
	return comparison{column: col, op: op, value: value}, nil
}
