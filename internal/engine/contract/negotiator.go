// Package contract negotiates whether a parallel-coordinates stage can draw
// from pre-aggregated histograms instead of traversing every data element.
package contract

import (
	"context"
	"fmt"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

// MaxTimeSteps is the largest number of time steps one contract may request.
const MaxTimeSteps = 512

// Default bin counts for context and focus histograms.
const (
	DefaultContextBins = 32
	DefaultFocusBins   = 128
)

// State is the negotiation state of one stage invocation.
type State uint8

const (
	// AwaitingContract is the state before ModifyContract runs.
	AwaitingContract State = iota
	// DirectTraversalRequested means the stage reads every element.
	DirectTraversalRequested
	// HistogramRequested means histograms are being acquired.
	HistogramRequested
	// ContractFinalized means the outgoing contract is complete.
	ContractFinalized
)

func (s State) String() string {
	switch s {
	case AwaitingContract:
		return "awaiting-contract"
	case DirectTraversalRequested:
		return "direct-traversal"
	case HistogramRequested:
		return "histogram"
	case ContractFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Negotiator rewrites the contract of a parallel-coordinates stage.
type Negotiator struct {
	source   ports.HistogramSource
	logger   ports.Logger
	settings domain.ParallelAxesSettings

	state          State
	usedHistograms bool
	contextHists   domain.Histograms
	focusHists     domain.Histograms
}

// NewNegotiator returns a negotiator drawing histograms from source.
func NewNegotiator(source ports.HistogramSource, logger ports.Logger, settings domain.ParallelAxesSettings) *Negotiator {
	if settings.ContextBins <= 0 {
		settings.ContextBins = DefaultContextBins
	}
	if settings.FocusBins <= 0 {
		settings.FocusBins = DefaultFocusBins
	}
	return &Negotiator{
		source:   source,
		logger:   logger,
		settings: settings,
	}
}

// State returns the current negotiation state.
func (n *Negotiator) State() State { return n.state }

// UsedHistograms reports whether the last contract was satisfied by histograms.
func (n *Negotiator) UsedHistograms() bool { return n.usedHistograms }

// ContextHistograms returns the coarse histograms per time step, or nil.
func (n *Negotiator) ContextHistograms() domain.Histograms { return n.contextHists }

// FocusHistograms returns the selected-region histograms per time step, or nil.
func (n *Negotiator) FocusHistograms() domain.Histograms { return n.focusHists }

// Pairs returns the number of consecutive axis pairs.
func (n *Negotiator) Pairs() int { return max(len(n.settings.Axes)-1, 0) }

// ModifyContract returns the contract the stage sends upstream. When the
// incoming contract preserves zones, names a scalar variable and full data
// focus is not forced, histograms are requested for every time step and
// axis pair; if all arrive, the domain list is restricted to nothing.
// Any histogram failure falls back to direct traversal. Streaming is always
// disabled.
func (n *Negotiator) ModifyContract(ctx context.Context, in *domain.Contract) (*domain.Contract, error) {
	n.state = AwaitingContract
	n.usedHistograms = false
	n.contextHists, n.focusHists = nil, nil

	if len(in.TimeStates) > MaxTimeSteps {
		return nil, zerr.With(zerr.Wrap(domain.ErrTooManyTimeSteps, "cannot negotiate contract"),
			"requested", len(in.TimeStates))
	}

	out := in.Clone()

	if in.ZonesPreserved && in.ScalarVariable && !n.settings.ForceFullDataFocus && n.Pairs() > 0 {
		n.state = HistogramRequested
		ok, err := n.acquire(ctx, in.TimeStates)
		if err != nil {
			return nil, err
		}
		if ok {
			n.usedHistograms = true
			out.RestrictDomains([]int{})
		} else {
			n.state = DirectTraversalRequested
		}
	} else {
		n.state = DirectTraversalRequested
	}

	out.NoStreaming()
	n.state = ContractFinalized
	return out, nil
}

// needsFocus reports whether a selected-region histogram is drawn.
func (n *Negotiator) needsFocus() bool {
	return len(n.settings.Extents) > 0 || n.settings.AlwaysDrawLines
}

// acquire fetches every histogram. On any failure nothing is kept.
func (n *Negotiator) acquire(ctx context.Context, timeStates []int) (bool, error) {
	pairs := n.Pairs()
	condition := FocusCondition(n.settings.Extents)

	contextHists := make(domain.Histograms, len(timeStates))
	var focusHists domain.Histograms
	if n.needsFocus() {
		focusHists = make(domain.Histograms, len(timeStates))
	}

	for t, state := range timeStates {
		contextHists[t] = make(domain.HistogramSet, pairs)
		if focusHists != nil {
			focusHists[t] = make(domain.HistogramSet, pairs)
		}

		for k := range pairs {
			req := domain.HistogramRequest{
				XVar:           n.settings.Axes[k],
				YVar:           n.settings.Axes[k+1],
				XBins:          n.settings.ContextBins,
				YBins:          n.settings.ContextBins,
				RegularBinning: true,
				TimeStep:       state,
			}
			h, err := n.source.Histogram(ctx, req)
			if err != nil {
				return n.abandon(ctx, req, err)
			}
			contextHists[t][k] = h

			if focusHists == nil {
				continue
			}
			req.XBins, req.YBins = n.settings.FocusBins, n.settings.FocusBins
			req.Condition = condition
			req.Exact = true
			h, err = n.source.Histogram(ctx, req)
			if err != nil {
				return n.abandon(ctx, req, err)
			}
			focusHists[t][k] = h
		}
	}

	n.contextHists, n.focusHists = contextHists, focusHists
	return true, nil
}

func (n *Negotiator) abandon(ctx context.Context, req domain.HistogramRequest, err error) (bool, error) {
	n.contextHists, n.focusHists = nil, nil
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	n.logger.Warn(fmt.Sprintf(
		"histogram of %s and %s at time step %d unavailable, reading data directly: %v",
		req.XVar, req.YVar, req.TimeStep, err,
	))
	return false, nil
}
