package idgen

import (
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"
)

// Option configures generator construction.
type Option func(o *options)

type options struct {
	source io.Reader
	logger *zerolog.Logger
}

func newOptions(opts []Option) *options {
	nop := zerolog.Nop()
	ret := &options{source: rand.Reader, logger: &nop}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithSecureSource replaces crypto/rand.Reader as the seed source.
func WithSecureSource(source io.Reader) Option {
	return func(o *options) {
		if source != nil {
			o.source = source
		}
	}
}

// WithLogger sets the logger used to report generator construction. Seeds
// and identifiers are never logged.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
