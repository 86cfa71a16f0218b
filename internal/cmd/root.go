// Package cmd implements the idgen command line interface.
package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/viant/idgen"
	"github.com/viant/idgen/internal/config"
	"github.com/viant/idgen/internal/log"
	"github.com/viant/idgen/internal/tracing"
)

// Version is overridden at build time.
var Version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
	strategy   string
	stripes    int
	traceFile  string

	cfg    config.Config
	logger *zerolog.Logger
}

// NewRootCommand builds the idgen command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "idgen",
		Short:         "Generate 128-bit identifiers",
		Long:          "Generate 128-bit identifiers from a securely seeded fast random generator.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file path (default ./idgen.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.strategy, "strategy", "", "generator strategy: alternative, striped, secure, simple")
	flags.IntVar(&opts.stripes, "stripes", 0, "number of stripes for the striped strategy")
	flags.StringVar(&opts.traceFile, "trace-file", "", "write OpenTelemetry spans to this file")

	root.AddCommand(newGenCommand(opts), newServeCommand(opts))
	return root
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	bootstrap := log.NewWithWriter(o.logLevel, cmd.ErrOrStderr())
	cfg, path, err := config.Load(bootstrap, o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("strategy") {
		cfg.Generator.Strategy = o.strategy
	}
	if flags.Changed("stripes") {
		cfg.Generator.Stripes = o.stripes
	}
	if flags.Changed("trace-file") {
		cfg.TraceFile = o.traceFile
	}
	o.cfg = cfg
	o.logger = log.NewWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
	o.logger.Debug().Str("path", path).Msg("config loaded")

	if cfg.TraceFile != "" {
		if err := tracing.Init("idgen", Version, cfg.TraceFile); err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
	}
	return nil
}

func (o *rootOptions) generator() (idgen.Generator, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	return idgen.NewFromConfig(&o.cfg.Generator, idgen.WithLogger(o.logger))
}
