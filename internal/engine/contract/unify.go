package contract

import (
	"context"

	"github.com/bytedance/sonic"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

// OwnershipKind classifies how the histograms of one time step are spread
// over the ranks.
type OwnershipKind uint8

const (
	// Unowned means no rank holds the time step.
	Unowned OwnershipKind = iota
	// PartialAllOwned means every rank holds a partial count.
	PartialAllOwned
	// SingleOwner means exactly one rank holds the complete count.
	SingleOwner
)

func (k OwnershipKind) String() string {
	switch k {
	case Unowned:
		return "unowned"
	case PartialAllOwned:
		return "partial"
	case SingleOwner:
		return "single-owner"
	default:
		return "unknown"
	}
}

// Ownership is the classification of one time step. Owner is only
// meaningful for SingleOwner.
type Ownership struct {
	Kind  OwnershipKind
	Owner int
}

// ClassifyOwnership derives the ownership of one time step from the
// per-rank presence flags. Any count other than none, one, or all is a
// mismatch.
func ClassifyOwnership(present []bool) (Ownership, error) {
	owner, count := -1, 0
	for rank, ok := range present {
		if ok {
			count++
			if owner < 0 {
				owner = rank
			}
		}
	}

	switch {
	case count == 0:
		return Ownership{Kind: Unowned}, nil
	case count == len(present):
		return Ownership{Kind: PartialAllOwned}, nil
	case count == 1:
		return Ownership{Kind: SingleOwner, Owner: owner}, nil
	default:
		return Ownership{}, zerr.With(zerr.Wrap(domain.ErrHistogramOwnershipMismatch, "cannot classify histograms"),
			"owners", count)
	}
}

// Unify collects the histograms of all ranks on rank 0. Partial counts are
// summed; single-owner sets are sent to rank 0. A time step that no rank
// holds stays nil. Combining partial and single-owner time steps in one
// call is rejected. Every rank must call Unify with the same number of
// time steps.
func Unify(ctx context.Context, comm ports.Communicator, hists domain.Histograms, pairs int) (domain.Histograms, error) {
	present := make([]bool, len(hists))
	for t, set := range hists {
		present[t] = set != nil && domain.Histograms{set}.Complete(pairs)
	}

	local, err := sonic.Marshal(present)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode histogram ownership")
	}
	gathered, err := comm.AllGather(ctx, local)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to exchange histogram ownership")
	}

	perRank := make([][]bool, len(gathered))
	for rank, payload := range gathered {
		if err := sonic.Unmarshal(payload, &perRank[rank]); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to decode histogram ownership"), "rank", rank)
		}
		if len(perRank[rank]) != len(hists) {
			return nil, zerr.With(zerr.Wrap(domain.ErrHistogramOwnershipMismatch, "time step counts differ"),
				"rank", rank)
		}
	}

	owners := make([]Ownership, len(hists))
	var partial, single bool
	for t := range hists {
		flags := make([]bool, len(perRank))
		for rank := range perRank {
			flags[rank] = perRank[rank][t]
		}
		if owners[t], err = ClassifyOwnership(flags); err != nil {
			return nil, zerr.With(err, "time_step", t)
		}
		partial = partial || owners[t].Kind == PartialAllOwned
		single = single || owners[t].Kind == SingleOwner
	}
	if partial && single && comm.Size() > 1 {
		return nil, zerr.Wrap(domain.ErrMixedHistogramUnification, "cannot unify histograms")
	}

	out := make(domain.Histograms, len(hists))
	copy(out, hists)

	if partial {
		if err := sumPartial(ctx, comm, out, owners); err != nil {
			return nil, err
		}
	}
	if single {
		if err := collectSingle(ctx, comm, out, owners); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func sumPartial(ctx context.Context, comm ports.Communicator, hists domain.Histograms, owners []Ownership) error {
	var flat []int64
	for t, o := range owners {
		if o.Kind != PartialAllOwned {
			continue
		}
		for _, h := range hists[t] {
			flat = append(flat, h.Counts...)
		}
	}

	summed, err := comm.SumInt64(ctx, flat)
	if err != nil {
		return zerr.Wrap(err, "failed to sum histograms")
	}
	if len(summed) != len(flat) {
		return zerr.Wrap(domain.ErrHistogramOwnershipMismatch, "histogram shapes differ across ranks")
	}

	offset := 0
	for t, o := range owners {
		if o.Kind != PartialAllOwned {
			continue
		}
		set := make(domain.HistogramSet, len(hists[t]))
		for k, h := range hists[t] {
			c := h.Clone()
			copy(c.Counts, summed[offset:offset+len(c.Counts)])
			offset += len(c.Counts)
			set[k] = c
		}
		hists[t] = set
	}
	return nil
}

func collectSingle(ctx context.Context, comm ports.Communicator, hists domain.Histograms, owners []Ownership) error {
	rank := comm.Rank()
	for t, o := range owners {
		if o.Kind != SingleOwner || o.Owner == 0 {
			continue
		}
		switch rank {
		case o.Owner:
			payload, err := sonic.Marshal(hists[t])
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to encode histograms"), "time_step", t)
			}
			if err := comm.Send(ctx, 0, payload); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to send histograms"), "time_step", t)
			}
		case 0:
			payload, err := comm.Recv(ctx, o.Owner)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to receive histograms"), "time_step", t)
			}
			var set domain.HistogramSet
			if err := sonic.Unmarshal(payload, &set); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to decode histograms"), "time_step", t)
			}
			hists[t] = set
		}
	}
	return nil
}
