package commands

import (
	"github.com/spf13/cobra"
)

// NewDumpCommand builds the "dump" subcommand: it builds a tree from
// --from, prints its CLRS pre-order shape, and exits non-zero if the
// structural invariant audit that Dump runs afterward fails.
func NewDumpCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the tree shape for --from and audit its invariants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd)

			spans, err := parseSpans(from)
			if err != nil {
				return err
			}

			tree := buildTree(spans)
			logger.Debug("built tree", "size", tree.Len())

			err = tree.Dump(cmd.OutOrStdout())
			if err != nil {
				logger.Warn("invariant check failed", "error", err)
				return err
			}

			logger.Info("invariants hold", "size", tree.Len())

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "comma-separated low:high pairs to build the tree from")

	return cmd
}
