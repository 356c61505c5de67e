package domain

// OpenDatabaseRequest opens a database on an engine at one time state.
type OpenDatabaseRequest struct {
	File      string `json:"file"`
	Format    string `json:"format,omitempty"`
	TimeState int    `json:"timeState"`
	// IgnoreExtents skips reading spatial extents when they are not needed.
	IgnoreExtents bool `json:"ignoreExtents,omitempty"`
}

// ApplyOperatorRequest adds an operator to the network being built.
type ApplyOperatorRequest struct {
	Operator   string            `json:"operator"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// MakePlotRequest finishes the network being built with a plot.
type MakePlotRequest struct {
	PlotType string `json:"plotType"`
	Variable string `json:"variable"`
	WindowID int    `json:"windowId"`
	// Parallel configures parallel-coordinates plots.
	Parallel *ParallelAxesSettings `json:"parallel,omitempty"`
}

// Plot types understood by engines.
const (
	PlotPseudocolor         = "Pseudocolor"
	PlotParallelCoordinates = "ParallelCoordinates"
)

// ExecuteResult summarizes one network execution.
type ExecuteResult struct {
	NetworkID      int       `json:"networkId"`
	Contract       *Contract `json:"contract"`
	UsedHistograms bool      `json:"usedHistograms"`
	NumTimeSteps   int       `json:"numTimeSteps"`
	NumSegments    int       `json:"numSegments"`
	NumRows        int       `json:"numRows"`
}

// RenderRequest renders a set of networks from one camera.
type RenderRequest struct {
	WindowID   int      `json:"windowId"`
	NetworkIDs []int    `json:"networkIds"`
	View       ViewInfo `json:"view"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
}

// RenderResult reports, per network, which domains survived frustum culling.
type RenderResult struct {
	WindowID       int           `json:"windowId"`
	VisibleDomains map[int][]int `json:"visibleDomains"`
	Transform      [16]float64   `json:"transform"`
	View           ViewInfo      `json:"view"`
}

// PickRequest asks for variable values at one element of a plot.
type PickRequest struct {
	NetworkID int      `json:"networkId"`
	Domain    int      `json:"domain"`
	Element   int      `json:"element"`
	Variables []string `json:"variables"`
}

// PickResult holds the values picked at one element.
type PickResult struct {
	Domain  int                `json:"domain"`
	Element int                `json:"element"`
	Values  map[string]float64 `json:"values"`
}

// QueryRequest runs a named query against a plot.
type QueryRequest struct {
	NetworkID int    `json:"networkId"`
	Name      string `json:"name"`
	Variable  string `json:"variable"`
	TimeState int    `json:"timeState"`
}

// Query names understood by engines.
const (
	QueryNumRows = "NumRows"
	QueryMin     = "Min"
	QueryMax     = "Max"
	QuerySum     = "Sum"
)

// QueryResult is the answer of a query.
type QueryResult struct {
	Name    string    `json:"name"`
	Values  []float64 `json:"values"`
	Message string    `json:"message"`
}

// ClearCacheRequest drops cached data on an engine.
type ClearCacheRequest struct {
	File     string `json:"file"`
	ClearAll bool   `json:"clearAll"`
}
