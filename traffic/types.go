// Package traffic: record types and congestion buckets.
package traffic

import "github.com/katalvlaran/tollgrid/tollrate"

// RouteRecord is one row of the route dataset: a station pair, the
// route label it belongs to, and observed volumes per vehicle class.
type RouteRecord struct {
	ID1   int64
	ID2   int64
	Route string
	Moto  float64
	Car   float64
	RV    float64
	Bus   float64
	Truck float64
}

// Congestion buckets a car-volume value. Boundaries are inclusive on
// the upper end: Low ≤ 15 < Medium ≤ 25 < High.
type Congestion int

const (
	Low Congestion = iota
	Medium
	High
)

// String returns the bucket label used at the table boundary.
func (c Congestion) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	default:
		return "high"
	}
}

// CongestionOf buckets a single car-volume value.
func CongestionOf(car float64) Congestion {
	switch {
	case car <= 15:
		return Low
	case car <= 25:
		return Medium
	default:
		return High
	}
}

// Pair keys a (ID1, ID2) station combination in grouped results.
type Pair struct {
	ID1 int64
	ID2 int64
}

// SpanRecord is one row of the observation-span dataset: a station pair
// and the day/clock window one observation covers.
type SpanRecord struct {
	ID1      int64
	ID2      int64
	StartDay string
	Start    tollrate.TimeOfDay
	EndDay   string
	End      tollrate.TimeOfDay
}
