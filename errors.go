package idgen

import "errors"

var (
	// ErrSecureSource is returned when the seed cannot be read from the secure source.
	ErrSecureSource = errors.New("idgen: secure random source unavailable")
	// ErrInvalidConfig is returned for settings that cannot build a generator.
	ErrInvalidConfig = errors.New("idgen: invalid config")
)
