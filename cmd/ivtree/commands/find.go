package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewFindCommand builds the "find" subcommand: it builds a tree from
// --from, then prints every interval overlapping the query range, one
// per line, in iteration order.
func NewFindCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "find <low> <high>",
		Short: "Print every interval in --from overlapping [low, high]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			low, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("ivtree: invalid low endpoint %q: %w", args[0], err)
			}

			high, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("ivtree: invalid high endpoint %q: %w", args[1], err)
			}

			spans, err := parseSpans(from)
			if err != nil {
				return err
			}

			tree := buildTree(spans)
			logger.Debug("built tree", "size", tree.Len(), "low", low, "high", high)

			out := cmd.OutOrStdout()
			count := 0

			for it := tree.Find(low, high); !it.End(); it.Next() {
				v := it.Value()
				fmt.Fprintf(out, "[%d, %d]\n", v.Low(), v.High())
				count++
			}

			if count == 0 {
				fmt.Fprintln(out, "(no overlaps)")
			}

			logger.Info("query complete", "overlaps", count)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "comma-separated low:high pairs to build the tree from")

	return cmd
}
