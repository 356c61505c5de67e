package localengine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/core/domain"
)

func TestOpenDatabase_SingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data12.csv", "x\n1\n")

	db, err := OpenDatabase(path)
	require.NoError(t, err)
	assert.False(t, db.Virtual)
	assert.Equal(t, []string{path}, db.Members)
	assert.Equal(t, []int{12}, db.Cycles)
	assert.Equal(t, 1, db.NumStates())

	_, err = db.Member(1)
	assert.ErrorIs(t, err, domain.ErrInvalidFile)
}

func TestOpenDatabase_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenDatabase(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidFile)

	_, err = OpenDatabase(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, domain.ErrInvalidFile)

	_, err = OpenDatabase(filepath.Join(dir, "none*.csv database"))
	assert.ErrorIs(t, err, domain.ErrInvalidFile)
}

func TestOpenDatabase_Virtual(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"w2.csv", "w10.csv", "w1.csv", "w3.txt", "other1.csv"} {
		writeFile(t, dir, name, "x\n1\n")
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "w4.csv"), domain.DirPerm))

	db, err := OpenDatabase(filepath.Join(dir, "w*.csv database"))
	require.NoError(t, err)
	assert.True(t, db.Virtual)
	assert.Equal(t, []string{
		filepath.Join(dir, "w1.csv"),
		filepath.Join(dir, "w2.csv"),
		filepath.Join(dir, "w10.csv"),
	}, db.Members)
	assert.Equal(t, []int{1, 2, 10}, db.Cycles)
}

func TestMetadataAndSIL(t *testing.T) {
	tbl := &Table{
		Columns: []string{"x", "y", "v"},
		Rows:    [][]float64{{0, 1, 5}, {2, 3, -5}, {4, 5, 0}},
	}
	doms := NewDomains(tbl, 2)
	db := &Database{Name: "/data/pts.csv", Members: []string{"/data/pts.csv"}, Cycles: []int{0}}

	assert.Equal(t, 2, doms.LeafCount())
	assert.Equal(t, []int{2}, doms.Rows(1))
	assert.Equal(t, [6]float64{0, 2, 1, 3, 0, 0}, doms.LeafExtents(0))

	md := metadata(db, tbl, doms)
	assert.Equal(t, "CSV", md.FileFormat)
	assert.Equal(t, 1, md.NumStates)
	assert.Equal(t, []float64{0}, md.Times)
	require.Len(t, md.Meshes, 1)
	assert.Equal(t, domain.Mesh{
		Name:             "points",
		NumDomains:       2,
		SpatialDimension: 2,
		Extents:          [6]float64{0, 4, 1, 5, 0, 0},
	}, md.Meshes[0])
	v, ok := md.Variable("v")
	require.True(t, ok)
	assert.InDelta(t, -5, v.Min, 0)
	assert.InDelta(t, 5, v.Max, 0)
	assert.False(t, md.MustRepopulateOnStateChange)

	s := sil(db, doms)
	assert.Equal(t, []domain.SILSet{{ID: 0, Name: "pts.csv"}, {ID: 1, Name: "domain0"}, {ID: 2, Name: "domain1"}}, s.Sets)
	assert.Equal(t, []domain.SILCollection{{Category: "domains", Superset: 0, Subsets: []int{1, 2}}}, s.Collections)
}

func TestMetadata_Virtual(t *testing.T) {
	tbl := &Table{Columns: []string{"x"}, Rows: [][]float64{{1}}}
	db := &Database{
		Name:    "/data/w*.csv database",
		Virtual: true,
		Members: []string{"/data/w1.csv", "/data/w2.csv"},
		Cycles:  []int{1, 2},
	}

	md := metadata(db, tbl, NewDomains(tbl, 8))
	assert.True(t, md.IsVirtual)
	assert.True(t, md.MustRepopulateOnStateChange)
	assert.Equal(t, []string{"w1.csv", "w2.csv"}, md.TimeStepNames)
	assert.Equal(t, []float64{1, 2}, md.Times)
}
