package distmat_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/distmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnroll_Cardinality verifies N·(N−1) records, no self-pairs, all
// distances non-negative.
func TestUnroll_Cardinality(t *testing.T) {
	m, err := distmat.Build([]distmat.Edge{
		{IDStart: 1, IDEnd: 2, Distance: 10},
		{IDStart: 2, IDEnd: 3, Distance: 5},
		{IDStart: 3, IDEnd: 4, Distance: 7},
	})
	require.NoError(t, err)

	rows := m.Unroll()
	n := m.Order()
	assert.Len(t, rows, n*(n-1), "one record per ordered pair of distinct stations")

	for _, r := range rows {
		assert.NotEqual(t, r.IDStart, r.IDEnd, "self-pairs must be omitted")
		assert.GreaterOrEqual(t, r.Distance, 0.0)
	}
}

// TestUnroll_DeterministicOrder verifies both loops follow ascending
// station order.
func TestUnroll_DeterministicOrder(t *testing.T) {
	m, err := distmat.Build([]distmat.Edge{
		{IDStart: 30, IDEnd: 10, Distance: 1},
		{IDStart: 10, IDEnd: 20, Distance: 2},
	})
	require.NoError(t, err)

	rows := m.Unroll()
	require.Len(t, rows, 6)

	want := [][2]int64{{10, 20}, {10, 30}, {20, 10}, {20, 30}, {30, 10}, {30, 20}}
	for i, r := range rows {
		assert.Equal(t, want[i][0], r.IDStart, "row %d start", i)
		assert.Equal(t, want[i][1], r.IDEnd, "row %d end", i)
	}
}

// TestUnroll_SymmetricPairs verifies (a,b) and (b,a) carry the same
// cumulative distance.
func TestUnroll_SymmetricPairs(t *testing.T) {
	rows, err := distmat.UnrollEdges([]distmat.Edge{
		{IDStart: 1, IDEnd: 2, Distance: 10},
		{IDStart: 2, IDEnd: 3, Distance: 5},
	})
	require.NoError(t, err)

	byPair := make(map[[2]int64]float64, len(rows))
	for _, r := range rows {
		byPair[[2]int64{r.IDStart, r.IDEnd}] = r.Distance
	}
	for pair, d := range byPair {
		assert.Equal(t, d, byPair[[2]int64{pair[1], pair[0]}], "pair %v must mirror", pair)
	}
	assert.Equal(t, 15.0, byPair[[2]int64{1, 3}], "two-hop pair carries the relaxed distance")
}

// TestUnrollEdges_PropagatesValidation verifies the convenience wrapper
// surfaces Build's ingestion errors unchanged.
func TestUnrollEdges_PropagatesValidation(t *testing.T) {
	_, err := distmat.UnrollEdges([]distmat.Edge{{IDStart: 1, IDEnd: 2, Distance: -3}})
	assert.ErrorIs(t, err, distmat.ErrNegativeDistance)
}
