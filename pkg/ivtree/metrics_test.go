package ivtree //nolint:testpackage // shares newTree/interval fixtures with tree_test.go

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentTracksSizeAndOperationCounts(t *testing.T) {
	t.Parallel()

	tree := newTree()
	metrics := NewMetrics("ivtree", "test")
	tree.Instrument(metrics)

	assert.InDelta(t, 0, testutil.ToFloat64(metrics.size), 0)

	h1 := tree.Insert(interval{0, 1})
	tree.Insert(interval{2, 3})

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.size), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.inserts), 0)

	it := tree.Find(0, 0)
	it.End()
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.finds), 0)

	tree.Erase(h1)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.size), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.erases), 0)

	require.Equal(t, 4, testutil.CollectAndCount(metrics))
}

func TestInstrumentDetachOnNil(t *testing.T) {
	t.Parallel()

	tree := newTree()
	metrics := NewMetrics("ivtree", "test")
	tree.Instrument(metrics)
	tree.Instrument(nil)

	tree.Insert(interval{0, 1})

	assert.InDelta(t, 0, testutil.ToFloat64(metrics.inserts), 0)
}
