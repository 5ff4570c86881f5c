package traffic_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypeCounts covers both bucket boundaries: 15 is still low, 25 is
// still medium.
func TestTypeCounts(t *testing.T) {
	got := traffic.TypeCounts([]traffic.RouteRecord{
		{Car: 15},   // low boundary
		{Car: 15.1}, // medium
		{Car: 25},   // medium boundary
		{Car: 25.1}, // high
		{Car: 3},    // low
	})

	assert.Equal(t, map[traffic.Congestion]int{
		traffic.Low:    2,
		traffic.Medium: 2,
		traffic.High:   1,
	}, got)
}

// TestTypeCounts_OmitsEmptyBuckets keeps absent buckets out of the map.
func TestTypeCounts_OmitsEmptyBuckets(t *testing.T) {
	got := traffic.TypeCounts([]traffic.RouteRecord{{Car: 1}})

	assert.Equal(t, map[traffic.Congestion]int{traffic.Low: 1}, got)
	_, ok := got[traffic.High]
	assert.False(t, ok)
}

// TestCongestion_String covers the boundary labels.
func TestCongestion_String(t *testing.T) {
	assert.Equal(t, "low", traffic.Low.String())
	assert.Equal(t, "medium", traffic.Medium.String())
	assert.Equal(t, "high", traffic.High.String())
}

// TestBusIndexes flags only rows strictly above twice the mean, in
// ascending row order.
func TestBusIndexes(t *testing.T) {
	// mean = 3.75, cutoff = 7.5: only row 1 exceeds it
	got := traffic.BusIndexes([]traffic.RouteRecord{
		{Bus: 1},  // 0
		{Bus: 10}, // 1
		{Bus: 2},  // 2
		{Bus: 2},  // 3
	})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0])

	// mean = 6, cutoff = 12: 12 itself is not strictly above
	got = traffic.BusIndexes([]traffic.RouteRecord{
		{Bus: 2}, {Bus: 12}, {Bus: 4}, {Bus: 11}, {Bus: 1},
	})
	assert.Empty(t, got)
}

// TestBusIndexes_Empty selects nothing from an empty table.
func TestBusIndexes_Empty(t *testing.T) {
	assert.Nil(t, traffic.BusIndexes(nil))
}

// TestFilterRoutes keeps routes whose mean truck volume strictly
// exceeds 7, sorted by route label.
func TestFilterRoutes(t *testing.T) {
	got := traffic.FilterRoutes([]traffic.RouteRecord{
		{Route: "M4", Truck: 10},
		{Route: "M4", Truck: 6}, // mean 8 → in
		{Route: "A1", Truck: 7}, // mean 7, not strict → out
		{Route: "Z9", Truck: 7.5},
		{Route: "B2", Truck: 20}, // in
	})

	assert.Equal(t, []string{"B2", "M4", "Z9"}, got)
}
