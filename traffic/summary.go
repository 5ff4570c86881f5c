// Package traffic: single-pass reductions over the route dataset.
package traffic

import "sort"

// heavyTruckMean is the FilterRoutes cutoff: routes whose mean truck
// volume strictly exceeds it are selected.
const heavyTruckMean = 7.0

// busOutlierFactor flags rows whose bus volume strictly exceeds this
// multiple of the column mean.
const busOutlierFactor = 2.0

// TypeCounts buckets every row's car volume (Low ≤ 15 < Medium ≤ 25 <
// High) and returns the occurrence count per bucket. Buckets with no
// occurrences are absent from the map.
func TypeCounts(records []RouteRecord) map[Congestion]int {
	out := make(map[Congestion]int, 3)
	for _, r := range records {
		out[CongestionOf(r.Car)]++
	}

	return out
}

// BusIndexes returns the positions (in input order, hence ascending) of
// the rows whose bus volume exceeds twice the mean bus volume. An empty
// input has no mean and selects nothing.
func BusIndexes(records []RouteRecord) []int {
	if len(records) == 0 {
		return nil
	}

	var sum float64
	for _, r := range records {
		sum += r.Bus
	}
	cutoff := busOutlierFactor * sum / float64(len(records))

	out := make([]int, 0, len(records))
	for i, r := range records {
		if r.Bus > cutoff {
			out = append(out, i)
		}
	}

	return out
}

// FilterRoutes returns the route labels whose mean truck volume exceeds
// 7, sorted ascending.
func FilterRoutes(records []RouteRecord) []string {
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc, len(records))
	for _, r := range records {
		g, ok := groups[r.Route]
		if !ok {
			g = &acc{}
			groups[r.Route] = g
		}
		g.sum += r.Truck
		g.count++
	}

	out := make([]string, 0, len(groups))
	for route, g := range groups {
		if g.sum/float64(g.count) > heavyTruckMean {
			out = append(out, route)
		}
	}
	sort.Strings(out)

	return out
}
