// Package traffic: car-volume pivot matrix and elementwise scaling.
package traffic

import "sort"

// Load-scaling boundaries for ScaleByLoad: cells above the cutoff are
// damped, the rest are boosted.
const (
	loadCutoff  = 20.0
	dampFactor  = 0.75
	boostFactor = 1.25
)

// PivotMatrix is the car-volume pivot of the route dataset: rows are the
// sorted distinct ID1 values, columns the sorted distinct ID2 values,
// and each cell holds the car volume of that combination (0 when the
// combination never occurs, and forced 0 on the ID1 == ID2 diagonal).
//
// Storage mirrors distmat: flat row-major []float64 with ID→position
// indexes, immutable after construction.
type PivotMatrix struct {
	rows []int64 // sorted distinct ID1 universe
	cols []int64 // sorted distinct ID2 universe
	data []float64
}

// CarMatrix pivots the route records into a PivotMatrix. Duplicate
// (ID1, ID2) combinations follow last-write-wins, matching the
// edge-seeding policy elsewhere in the module.
func CarMatrix(records []RouteRecord) *PivotMatrix {
	rows := sortedUniverse(records, func(r RouteRecord) int64 { return r.ID1 })
	cols := sortedUniverse(records, func(r RouteRecord) int64 { return r.ID2 })

	rowIdx := positionIndex(rows)
	colIdx := positionIndex(cols)

	data := make([]float64, len(rows)*len(cols))
	for _, r := range records {
		data[rowIdx[r.ID1]*len(cols)+colIdx[r.ID2]] = r.Car
	}

	// Force the shared-ID diagonal to zero regardless of observed values.
	for id, i := range rowIdx {
		if j, ok := colIdx[id]; ok {
			data[i*len(cols)+j] = 0
		}
	}

	return &PivotMatrix{rows: rows, cols: cols, data: data}
}

// Rows returns the sorted ID1 universe (copy).
func (m *PivotMatrix) Rows() []int64 {
	out := make([]int64, len(m.rows))
	copy(out, m.rows)

	return out
}

// Cols returns the sorted ID2 universe (copy).
func (m *PivotMatrix) Cols() []int64 {
	out := make([]int64, len(m.cols))
	copy(out, m.cols)

	return out
}

// At returns the cell for the (id1, id2) combination; the second result
// is false when either ID is absent from its universe.
func (m *PivotMatrix) At(id1, id2 int64) (float64, bool) {
	i, okR := position(m.rows, id1)
	j, okC := position(m.cols, id2)
	if !okR || !okC {
		return 0, false
	}

	return m.data[i*len(m.cols)+j], true
}

// ScaleByLoad returns a new matrix with every cell conditionally scaled:
// values above 20 are multiplied by 0.75, all others by 1.25. The
// receiver is left untouched.
func (m *PivotMatrix) ScaleByLoad() *PivotMatrix {
	out := &PivotMatrix{
		rows: m.rows,
		cols: m.cols,
		data: make([]float64, len(m.data)),
	}
	for i, v := range m.data {
		if v > loadCutoff {
			out.data[i] = v * dampFactor
			continue
		}
		out.data[i] = v * boostFactor
	}

	return out
}

// sortedUniverse collects the distinct values of one ID column in
// ascending order.
func sortedUniverse(records []RouteRecord, key func(RouteRecord) int64) []int64 {
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		seen[key(r)] = struct{}{}
	}
	out := make([]int64, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })

	return out
}

// positionIndex maps each universe member to its slice position.
func positionIndex(ids []int64) map[int64]int {
	idx := make(map[int64]int, len(ids))
	for pos, id := range ids {
		idx[id] = pos
	}

	return idx
}

// position locates id in the sorted universe via binary search.
func position(ids []int64, id int64) (int, bool) {
	i := sort.Search(len(ids), func(k int) bool { return ids[k] >= id })
	if i < len(ids) && ids[i] == id {
		return i, true
	}

	return 0, false
}
