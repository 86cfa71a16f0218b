package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Striped spreads calls round-robin over independently seeded Alternative
// generators so concurrent callers contend on several locks instead of one.
type Striped struct {
	stripes []*Alternative
	next    atomic.Uint64
}

// NewStriped seeds count generators, each with its own read from the secure source.
func NewStriped(count int, options ...Option) (*Striped, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: stripes must be > 0, got %d", ErrInvalidConfig, count)
	}
	opts := newOptions(options)
	ret := &Striped{stripes: make([]*Alternative, count)}
	for i := range ret.stripes {
		seed, err := readSeed(opts.source)
		if err != nil {
			return nil, fmt.Errorf("stripe %d: %w", i, err)
		}
		ret.stripes[i] = newAlternative(seed)
	}
	opts.logger.Debug().Str("strategy", StrategyStriped).Int("stripes", count).Msg("generator seeded")
	return ret, nil
}

// GenerateID returns the next identifier from the next stripe.
func (s *Striped) GenerateID() uuid.UUID {
	i := s.next.Add(1) - 1
	return s.stripes[i%uint64(len(s.stripes))].GenerateID()
}

// Len returns the number of stripes.
func (s *Striped) Len() int { return len(s.stripes) }
