package domain

import "slices"

// Contract describes what data a pipeline stage needs from upstream.
type Contract struct {
	Variable string `json:"variable"`
	// ScalarVariable is set when Variable is a true scalar rather than an array or vector.
	ScalarVariable bool `json:"scalarVariable"`
	// ZonesPreserved is set when no upstream filter changes zone identity.
	ZonesPreserved bool  `json:"zonesPreserved"`
	Domains        []int `json:"domains"`
	// DomainsRestricted is set once Domains replaces the full domain list.
	DomainsRestricted bool  `json:"domainsRestricted"`
	Streaming         bool  `json:"streaming"`
	TimeStates        []int `json:"timeStates"`
}

// NewContract returns an unrestricted, streaming contract for variable.
func NewContract(variable string, domains []int) *Contract {
	return &Contract{
		Variable:       variable,
		ScalarVariable: true,
		ZonesPreserved: true,
		Domains:        slices.Clone(domains),
		Streaming:      true,
		TimeStates:     []int{0},
	}
}

// RestrictDomains limits the contract to domains.
func (c *Contract) RestrictDomains(domains []int) {
	c.Domains = slices.Clone(domains)
	if c.Domains == nil {
		c.Domains = []int{}
	}
	c.DomainsRestricted = true
}

// NoStreaming requires the whole dataset to be materialized at once.
func (c *Contract) NoStreaming() {
	c.Streaming = false
}

// Clone returns a deep copy of c.
func (c *Contract) Clone() *Contract {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Domains = slices.Clone(c.Domains)
	cp.TimeStates = slices.Clone(c.TimeStates)
	return &cp
}

// AxisExtent is an active selection range on one parallel-coordinates axis.
type AxisExtent struct {
	Variable string  `json:"variable"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// ParallelAxesSettings configure a parallel-coordinates plot.
type ParallelAxesSettings struct {
	Axes []string `json:"axes"`
	// Extents are the active selection ranges; empty means nothing is selected.
	Extents            []AxisExtent `json:"extents,omitempty"`
	ContextBins        int          `json:"contextBins"`
	FocusBins          int          `json:"focusBins"`
	AlwaysDrawLines    bool         `json:"alwaysDrawLines"`
	ForceFullDataFocus bool         `json:"forceFullDataFocus"`
}
