package idgen

import (
	"io"

	"github.com/google/uuid"
)

// Secure returns RFC 4122 version-4 UUIDs, reading 16 bytes from the secure
// source on every call. The source must be safe for concurrent use.
type Secure struct {
	source io.Reader
}

// NewSecure creates a Secure generator.
func NewSecure(options ...Option) *Secure {
	opts := newOptions(options)
	opts.logger.Debug().Str("strategy", StrategySecure).Msg("generator created")
	return &Secure{source: opts.source}
}

// GenerateID panics if the secure source fails, as uuid.New does.
func (s *Secure) GenerateID() uuid.UUID {
	return uuid.Must(uuid.NewRandomFromReader(s.source))
}
