// Package tollrate: per-vehicle linear rate extension.
package tollrate

import "github.com/katalvlaran/tollgrid/distmat"

// Calculate extends every edge record with the five vehicle-class toll
// columns, each equal to Distance × the fixed class rate. Rows are
// neither filtered nor reordered; the input slice is not mutated.
//
// Complexity: O(E) time and space for E input rows.
func Calculate(edges []distmat.Edge) []TollRecord {
	out := make([]TollRecord, len(edges))
	for i, e := range edges {
		out[i] = TollRecord{
			IDStart:  e.IDStart,
			IDEnd:    e.IDEnd,
			Distance: e.Distance,
			Moto:     e.Distance * MotoRate,
			Car:      e.Distance * CarRate,
			RV:       e.Distance * RVRate,
			Bus:      e.Distance * BusRate,
			Truck:    e.Distance * TruckRate,
		}
	}

	return out
}
