package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/idgen/internal/batch"
)

func newGenCommand(root *rootOptions) *cobra.Command {
	var (
		count  int
		format string
		dest   string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print identifiers, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("count") {
				root.cfg.Count = count
			}
			if cmd.Flags().Changed("format") {
				root.cfg.Format = format
			}
			gen, err := root.generator()
			if err != nil {
				return err
			}
			svc := batch.New(gen, nil)
			ctx := cmd.Context()
			ids, err := svc.Generate(ctx, root.cfg.Count, root.cfg.Format)
			if err != nil {
				return err
			}
			if dest != "" {
				if err := svc.Upload(ctx, dest, ids); err != nil {
					return err
				}
				root.logger.Info().Int("count", len(ids)).Str("dest", dest).Msg("ids uploaded")
				return nil
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				if _, err := fmt.Fprintln(out, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")
	cmd.Flags().StringVarP(&format, "format", "f", "uuid", "output format: uuid, hex, bits")
	cmd.Flags().StringVar(&dest, "dest", "", "upload identifiers to this URL (file://, mem://, ...) instead of stdout")
	return cmd
}
