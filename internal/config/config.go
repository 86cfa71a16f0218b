package config

import (
	"fmt"
	"time"

	"github.com/viant/idgen"
	"github.com/viant/idgen/internal/render"
)

// Config holds the command line application settings.
type Config struct {
	Generator         idgen.Config  `mapstructure:"generator" yaml:"generator"`
	Format            string        `mapstructure:"format" yaml:"format"`
	Count             int           `mapstructure:"count" yaml:"count"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	TraceFile         string        `mapstructure:"trace_file" yaml:"trace_file"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Generator:         *idgen.DefaultConfig(),
		Format:            render.FormatUUID,
		Count:             1,
		LogLevel:          "info",
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Generator.Validate(); err != nil {
		return err
	}
	if err := render.Validate(c.Format); err != nil {
		return err
	}
	if c.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", c.Count)
	}
	return nil
}
