// Package commands implements the ivtree CLI's command handlers.
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/ivtree/pkg/ivtree"
)

// span is the value type stored in the CLI's demonstration tree: a plain
// closed interval tagged with nothing beyond its own endpoints.
type span struct {
	low, high int64
}

func (s span) Low() int64  { return s.low }
func (s span) High() int64 { return s.high }

// parseSpans parses a "low:high,low:high,..." list, the same shape
// anrid/ipcheck's CSV-range flags use for a list of bounds, adapted to
// one flag instead of a file.
func parseSpans(raw string) ([]span, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	spans := make([]span, 0, len(parts))

	for _, p := range parts {
		low, high, err := parsePair(p)
		if err != nil {
			return nil, err
		}

		spans = append(spans, span{low: low, high: high})
	}

	return spans, nil
}

func parsePair(p string) (int64, int64, error) {
	lowStr, highStr, ok := strings.Cut(strings.TrimSpace(p), ":")
	if !ok {
		return 0, 0, fmt.Errorf("ivtree: %q is not a low:high pair", p)
	}

	low, err := strconv.ParseInt(strings.TrimSpace(lowStr), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("ivtree: invalid low endpoint in %q: %w", p, err)
	}

	high, err := strconv.ParseInt(strings.TrimSpace(highStr), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("ivtree: invalid high endpoint in %q: %w", p, err)
	}

	if high < low {
		return 0, 0, fmt.Errorf("ivtree: %q has high < low", p)
	}

	return low, high, nil
}

func buildTree(spans []span) *ivtree.Tree[span, int64] {
	tree := ivtree.NewOf[span, int64]()

	for _, s := range spans {
		tree.Insert(s)
	}

	return tree
}
