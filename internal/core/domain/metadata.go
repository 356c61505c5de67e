package domain

import "slices"

// VarType classifies a variable exposed by a database.
type VarType uint8

const (
	// VarScalar is a single value per element.
	VarScalar VarType = iota
	// VarVector is a fixed-size tuple per element.
	VarVector
	// VarArray is a variable-length collection of values per element.
	VarArray
)

func (t VarType) String() string {
	switch t {
	case VarScalar:
		return "scalar"
	case VarVector:
		return "vector"
	case VarArray:
		return "array"
	default:
		return "unknown"
	}
}

// Mesh describes one mesh of a database.
type Mesh struct {
	Name             string     `json:"name"`
	NumDomains       int        `json:"numDomains"`
	SpatialDimension int        `json:"spatialDimension"`
	Extents          [6]float64 `json:"extents"`
}

// Variable describes one variable of a database.
type Variable struct {
	Name     string  `json:"name"`
	MeshName string  `json:"meshName"`
	Type     VarType `json:"type"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Metadata describes the contents of a database at one time state.
type Metadata struct {
	FullName   string     `json:"fullName"`
	FileFormat string     `json:"fileFormat"`
	NumStates  int        `json:"numStates"`
	Cycles     []int      `json:"cycles"`
	Times      []float64  `json:"times"`
	Meshes     []Mesh     `json:"meshes"`
	Variables  []Variable `json:"variables"`
	IsVirtual  bool       `json:"isVirtual"`
	// TimeStepNames lists the files behind a virtual database, one per state.
	TimeStepNames []string `json:"timeStepNames"`
	// MustRepopulateOnStateChange is set by sources whose contents differ
	// per time state.
	MustRepopulateOnStateChange bool `json:"mustRepopulateOnStateChange"`
	IsSimulation                bool `json:"isSimulation"`
}

// Variable returns the variable named name.
func (m *Metadata) Variable(name string) (Variable, bool) {
	for _, v := range m.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Clone returns a deep copy of m.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	c := *m
	c.Cycles = slices.Clone(m.Cycles)
	c.Times = slices.Clone(m.Times)
	c.Meshes = slices.Clone(m.Meshes)
	c.Variables = slices.Clone(m.Variables)
	c.TimeStepNames = slices.Clone(m.TimeStepNames)
	return &c
}

// SILSet is one named subset of a database.
type SILSet struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SILCollection groups subsets of a superset under a category such as
// "domains" or "materials".
type SILCollection struct {
	Category string `json:"category"`
	Superset int    `json:"superset"`
	Subsets  []int  `json:"subsets"`
}

// SIL is the subset inclusion lattice of a database.
type SIL struct {
	Sets        []SILSet        `json:"sets"`
	Collections []SILCollection `json:"collections"`
}

// Clone returns a deep copy of s.
func (s *SIL) Clone() *SIL {
	if s == nil {
		return nil
	}
	c := &SIL{
		Sets:        slices.Clone(s.Sets),
		Collections: make([]SILCollection, len(s.Collections)),
	}
	for i, col := range s.Collections {
		col.Subsets = slices.Clone(col.Subsets)
		c.Collections[i] = col
	}
	return c
}

// AddSet appends a set and returns its id.
func (s *SIL) AddSet(name string) int {
	id := len(s.Sets)
	s.Sets = append(s.Sets, SILSet{ID: id, Name: name})
	return id
}

// AddCollection appends a collection of subsets below superset.
func (s *SIL) AddCollection(category string, superset int, subsets []int) {
	s.Collections = append(s.Collections, SILCollection{
		Category: category,
		Superset: superset,
		Subsets:  subsets,
	})
}
