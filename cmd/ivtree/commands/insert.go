package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/ivtree/pkg/ivtree"
)

// NewInsertCommand builds the "insert" subcommand: it reads an interval
// list, inserts every one into a fresh tree that lives for the process's
// lifetime, and reports the resulting size. There is no persistence
// between invocations.
func NewInsertCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "insert <low:high>...",
		Short: "Insert a list of intervals into a fresh tree and report its size",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			combined := from
			for _, a := range args {
				if combined != "" {
					combined += ","
				}

				combined += a
			}

			spans, err := parseSpans(combined)
			if err != nil {
				return err
			}

			logger.Debug("parsed spans", "count", len(spans))

			tree := ivtree.NewOf[span, int64]()
			metrics := ivtree.NewMetrics("ivtree", "cli")
			tree.Instrument(metrics)

			for _, s := range spans {
				tree.Insert(s)
			}

			logger.Info("inserted intervals", "count", tree.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %s intervals\n", humanize.Comma(int64(tree.Len())))

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "comma-separated low:high pairs, in addition to any positional arguments")

	return cmd
}
