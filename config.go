package idgen

import "fmt"

// Config is a serialisable representation of the generator settings. It can
// be populated from JSON, YAML, environment variables, etc.
type Config struct {
	Strategy string `json:"strategy" yaml:"strategy" mapstructure:"strategy"`
	// Stripes is only used by the striped strategy.
	Stripes int `json:"stripes" yaml:"stripes" mapstructure:"stripes"`
}

// DefaultConfig returns a Config using the hybrid generator. Callers may
// modify the returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Strategy: StrategyAlternative,
		Stripes:  8,
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Strategy {
	case StrategyAlternative, StrategySecure, StrategySimple:
	case StrategyStriped:
		if c.Stripes <= 0 {
			return fmt.Errorf("%w: stripes must be > 0", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported strategy %q", ErrInvalidConfig, c.Strategy)
	}
	return nil
}

// NewFromConfig builds the generator selected by cfg. A nil cfg uses DefaultConfig.
func NewFromConfig(cfg *Config, options ...Option) (Generator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Strategy {
	case StrategyStriped:
		return NewStriped(cfg.Stripes, options...)
	case StrategySecure:
		return NewSecure(options...), nil
	case StrategySimple:
		return NewSimple(), nil
	default:
		return NewAlternative(options...)
	}
}
