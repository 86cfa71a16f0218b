package idgen

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

const seedSize = 8

// Alternative generates identifiers from a math/rand source that is seeded
// once from a secure random source. It is safe for concurrent use; callers
// share a single lock, see Striped for a lower-contention variant.
type Alternative struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewAlternative reads an 8-byte seed from the secure source and returns a
// generator seeded with it. The secure source is not used afterwards.
func NewAlternative(options ...Option) (*Alternative, error) {
	opts := newOptions(options)
	seed, err := readSeed(opts.source)
	if err != nil {
		return nil, err
	}
	opts.logger.Debug().Str("strategy", StrategyAlternative).Msg("generator seeded")
	return newAlternative(seed), nil
}

func newAlternative(seed int64) *Alternative {
	return &Alternative{random: rand.New(rand.NewSource(seed))}
}

func readSeed(source io.Reader) (int64, error) {
	var seed [seedSize]byte
	if _, err := io.ReadFull(source, seed[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSecureSource, err)
	}
	return fold(seed[:]), nil
}

// GenerateID returns the next identifier. It never fails.
func (a *Alternative) GenerateID() uuid.UUID {
	return FromBits(a.Next())
}

// Next advances the generator by 16 bytes and returns them as the high and
// low halves of an identifier.
func (a *Alternative) Next() (hi, lo int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	hi = int64(a.random.Uint64())
	lo = int64(a.random.Uint64())
	return hi, lo
}
