package localengine

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Database is an opened file or a virtual database of numbered files, one
// per time state.
type Database struct {
	Name    string
	Virtual bool
	Members []string
	Cycles  []int
}

// OpenDatabase resolves path to its member files.
func OpenDatabase(path string) (*Database, error) {
	dir, base := filepath.Split(path)
	if domain.IsVirtualDatabaseName(base) {
		return openVirtual(path, filepath.Clean(dir), base)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFile, err.Error()), "file", path)
	}
	if info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFile, "is a directory"), "file", path)
	}
	cycle := 0
	if _, digits, _, ok := domain.SplitNumbered(base); ok {
		cycle, _ = strconv.Atoi(digits)
	}
	return &Database{Name: path, Members: []string{path}, Cycles: []int{cycle}}, nil
}

func openVirtual(path, dir, name string) (*Database, error) {
	pattern := strings.TrimSuffix(name, domain.VirtualDatabaseSuffix)
	prefix, ext, _ := strings.Cut(pattern, "*")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFile, err.Error()), "file", path)
	}

	type member struct {
		path  string
		cycle int
	}
	var members []member
	for _, e := range entries {
		p, digits, x, ok := domain.SplitNumbered(e.Name())
		if e.IsDir() || !ok || p != prefix || x != ext {
			continue
		}
		cycle, _ := strconv.Atoi(digits)
		members = append(members, member{path: filepath.Join(dir, e.Name()), cycle: cycle})
	}
	if len(members) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFile, "virtual database has no members"), "file", path)
	}
	slices.SortFunc(members, func(a, b member) int {
		return cmp.Or(cmp.Compare(a.cycle, b.cycle), cmp.Compare(a.path, b.path))
	})

	db := &Database{Name: path, Virtual: true}
	for _, m := range members {
		db.Members = append(db.Members, m.path)
		db.Cycles = append(db.Cycles, m.cycle)
	}
	return db, nil
}

// NumStates returns the number of time states.
func (d *Database) NumStates() int { return len(d.Members) }

// Member returns the file behind time state.
func (d *Database) Member(state int) (string, error) {
	if state < 0 || state >= len(d.Members) {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidFile, "time state out of range"),
			"state", state), "states", len(d.Members))
	}
	return d.Members[state], nil
}

// Domains partitions the rows of a table into fixed-size domains.
type Domains struct {
	table *Table
	size  int
	cols  []int
}

// NewDomains splits t into domains of size rows.
func NewDomains(t *Table, size int) *Domains {
	return &Domains{table: t, size: max(size, 1), cols: t.coordinateColumns()}
}

// LeafCount implements ports.SpatialTree.
func (d *Domains) LeafCount() int {
	return (len(d.table.Rows) + d.size - 1) / d.size
}

// Rows returns the row indices of domain i.
func (d *Domains) Rows(i int) []int {
	lo := i * d.size
	hi := min(lo+d.size, len(d.table.Rows))
	rows := make([]int, 0, max(hi-lo, 0))
	for r := lo; r < hi; r++ {
		rows = append(rows, r)
	}
	return rows
}

// All returns every domain index.
func (d *Domains) All() []int {
	all := make([]int, d.LeafCount())
	for i := range all {
		all[i] = i
	}
	return all
}

// LeafExtents implements ports.SpatialTree.
func (d *Domains) LeafExtents(i int) [6]float64 {
	return d.extents(d.Rows(i))
}

// Extents returns the bounds of every row.
func (d *Domains) Extents() [6]float64 {
	return d.extents(d.table.AllRows())
}

func (d *Domains) extents(rows []int) [6]float64 {
	var b [6]float64
	for axis, col := range d.cols {
		b[2*axis], b[2*axis+1] = d.table.Range(col, rows)
	}
	return b
}

// Dimension returns the number of coordinate columns.
func (d *Domains) Dimension() int { return len(d.cols) }

// metadata describes db at state, using t for variable ranges.
func metadata(db *Database, t *Table, domains *Domains) *domain.Metadata {
	md := &domain.Metadata{
		FullName:   db.Name,
		FileFormat: "CSV",
		NumStates:  db.NumStates(),
		Cycles:     slices.Clone(db.Cycles),
		IsVirtual:  db.Virtual,
		Meshes: []domain.Mesh{{
			Name:             "points",
			NumDomains:       domains.LeafCount(),
			SpatialDimension: domains.Dimension(),
			Extents:          domains.Extents(),
		}},
		MustRepopulateOnStateChange: db.Virtual,
	}
	for _, c := range db.Cycles {
		md.Times = append(md.Times, float64(c))
	}
	if db.Virtual {
		for _, m := range db.Members {
			md.TimeStepNames = append(md.TimeStepNames, filepath.Base(m))
		}
	}
	all := t.AllRows()
	for i, name := range t.Columns {
		lo, hi := t.Range(i, all)
		md.Variables = append(md.Variables, domain.Variable{
			Name:     name,
			MeshName: "points",
			Type:     domain.VarScalar,
			Min:      lo,
			Max:      hi,
		})
	}
	return md
}

// sil is one set for the file, one per domain and a "domains" collection.
func sil(db *Database, domains *Domains) *domain.SIL {
	s := &domain.SIL{}
	top := s.AddSet(filepath.Base(db.Name))
	subsets := make([]int, 0, domains.LeafCount())
	for i := range domains.LeafCount() {
		subsets = append(subsets, s.AddSet("domain"+strconv.Itoa(i)))
	}
	s.AddCollection("domains", top, subsets)
	return s
}
