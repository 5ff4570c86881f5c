// Package distmat: ±10% average-distance band filter.
package distmat

import (
	"fmt"
	"sort"
)

// ThresholdFactor is the half-width of the selection band as a fraction
// of the reference station's average outgoing distance.
const ThresholdFactor = 0.1

const opWithinThreshold = "WithinThreshold"

// WithinThreshold selects the rows whose distance lies within ±10%
// (inclusive at both bounds) of the average distance of the rows whose
// IDStart equals reference.
//
// Stage 1: average the Distance of rows with IDStart == reference; if no
// row matches, return ErrReferenceNotFound — a missing reference must
// surface, not degenerate into a NaN band.
// Stage 2: keep rows with avg·0.9 ≤ Distance ≤ avg·1.1. When avg is 0
// the band has zero width and only exact-zero distances qualify.
// Stage 3: stable-sort the survivors by IDStart ascending; ties keep
// their input order.
//
// The input slice is not mutated; the result is a fresh slice.
func WithinThreshold(edges []Edge, reference int64) ([]Edge, error) {
	var sum float64
	var count int
	for _, e := range edges {
		if e.IDStart == reference {
			sum += e.Distance
			count++
		}
	}
	if count == 0 {
		return nil, fmt.Errorf("%s: station %d: %w", opWithinThreshold, reference, ErrReferenceNotFound)
	}

	avg := sum / float64(count)
	band := ThresholdFactor * avg
	lo, hi := avg-band, avg+band

	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Distance >= lo && e.Distance <= hi {
			out = append(out, e)
		}
	}

	// Stable: rows sharing an IDStart stay in input order.
	sort.SliceStable(out, func(a, b int) bool { return out[a].IDStart < out[b].IDStart })

	return out, nil
}
