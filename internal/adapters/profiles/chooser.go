package profiles

import (
	"context"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// FirstChooser picks without asking: the profile named Preferred when one
// matches, otherwise the first candidate.
type FirstChooser struct {
	Preferred string
}

// Choose implements ports.ProfileChooser.
func (c FirstChooser) Choose(ctx context.Context, host string, candidates []domain.LaunchProfile) (domain.LaunchProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.LaunchProfile{}, zerr.Wrap(domain.ErrCancelledConnect, err.Error())
	}
	if len(candidates) == 0 {
		return domain.LaunchProfile{}, zerr.With(zerr.Wrap(domain.ErrProfileNotFound, "no candidates"), "host", host)
	}
	for _, p := range candidates {
		if c.Preferred != "" && p.Name == c.Preferred {
			return p.Clone(), nil
		}
	}
	return candidates[0].Clone(), nil
}
