package localengine

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Table is one CSV file: a header of variable names and numeric rows.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// ReadTable parses the CSV file at path. Every field after the header must
// be a number.
func ReadTable(path string) (*Table, error) {
	//nolint:gosec // G304: path is a database the user asked to open
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFile, err.Error()), "file", path)
	}
	defer func() { _ = f.Close() }()
	t, err := parseTable(f)
	if err != nil {
		return nil, zerr.With(err, "file", path)
	}
	return t, nil
}

func parseTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, zerr.Wrap(domain.ErrInvalidFile, "missing header")
		}
		return nil, zerr.Wrap(domain.ErrInvalidFile, err.Error())
	}
	t := &Table{Columns: make([]string, len(header))}
	for i, name := range header {
		t.Columns[i] = strings.TrimSpace(name)
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(domain.ErrInvalidFile, err.Error())
		}
		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFile, "non-numeric field"), "line", line)
			}
			row[i] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Column returns the index of the variable named name.
func (t *Table) Column(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Range returns the smallest and largest value of column col over rows.
// An empty selection yields 0, 0.
func (t *Table) Range(col int, rows []int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		v := t.Rows[r][col]
		lo, hi = min(lo, v), max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// AllRows returns the indices of every row.
func (t *Table) AllRows() []int {
	rows := make([]int, len(t.Rows))
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// coordinateColumns returns the columns used as x, y and z: columns named
// x, y and z if present, otherwise the first three.
func (t *Table) coordinateColumns() []int {
	var cols []int
	for _, axis := range []string{"x", "y", "z"} {
		for i, c := range t.Columns {
			if strings.EqualFold(c, axis) {
				cols = append(cols, i)
				break
			}
		}
	}
	if len(cols) > 0 {
		return cols
	}
	for i := range min(len(t.Columns), 3) {
		cols = append(cols, i)
	}
	return cols
}
