package cmd

import (
	"github.com/spf13/cobra"

	"github.com/viant/idgen/internal/batch"
	transporthttp "github.com/viant/idgen/internal/transport/http"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve identifiers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				root.cfg.Addr = addr
			}
			gen, err := root.generator()
			if err != nil {
				return err
			}
			server := transporthttp.NewServer(root.cfg, batch.New(gen, nil), root.logger)
			return server.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	return cmd
}
