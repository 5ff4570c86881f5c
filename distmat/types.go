// Package distmat: core types and sentinel errors.
package distmat

import "errors"

// Sentinel errors returned by this package. Algorithms return these
// directly or wrapped with fmt.Errorf("op: …: %w", err); callers match
// them via errors.Is.
var (
	// ErrNegativeDistance indicates an input edge with a negative weight.
	// Negative weights invalidate undirected shortest-path semantics.
	ErrNegativeDistance = errors.New("distmat: negative edge distance")

	// ErrNonFiniteDistance indicates an input edge whose weight is NaN or
	// ±Inf; only finite non-negative weights are accepted at ingestion.
	ErrNonFiniteDistance = errors.New("distmat: non-finite edge distance")

	// ErrUnknownID indicates a station ID not present in the matrix index.
	ErrUnknownID = errors.New("distmat: unknown station id")

	// ErrReferenceNotFound indicates that the threshold filter's reference
	// station appears in no id_start column, so its average outgoing
	// distance is undefined. This is surfaced explicitly rather than
	// letting a NaN threshold select nothing.
	ErrReferenceNotFound = errors.New("distmat: reference station has no outgoing edges")
)

// Edge is one row of the toll-network edge list: an undirected weighted
// connection between two stations. Distance must be finite and ≥ 0.
//
// The same shape serves both as raw input to Build and as the unrolled
// output of a DistanceMatrix, where Distance is the cumulative
// shortest-path distance between the pair.
type Edge struct {
	IDStart  int64   // origin station ID
	IDEnd    int64   // destination station ID
	Distance float64 // edge weight, or cumulative distance after unrolling
}

// DistanceMatrix is a dense, symmetric all-pairs shortest-distance table
// over the stations observed in the input edge list.
//
// Storage is a flat row-major []float64 of order n = len(ids); entry
// (i,j) lives at data[i*n+j]. ids is sorted ascending and index maps a
// station ID to its row/column position. Off-diagonal +Inf means the
// pair is unreachable.
//
// A DistanceMatrix is an immutable snapshot: no method mutates it after
// Build returns.
type DistanceMatrix struct {
	ids   []int64       // sorted station universe
	index map[int64]int // station ID → row/col position
	data  []float64     // row-major distances, len = n*n
}

// Order returns the number of distinct stations N (the matrix is N×N).
func (m *DistanceMatrix) Order() int { return len(m.ids) }

// IDs returns the station universe in ascending order. The returned
// slice is a copy; mutating it does not affect the matrix.
func (m *DistanceMatrix) IDs() []int64 {
	out := make([]int64, len(m.ids))
	copy(out, m.ids)

	return out
}

// At returns the shortest distance between stations a and b, or +Inf if
// no path connects them. Returns ErrUnknownID when either station is
// absent from the matrix.
func (m *DistanceMatrix) At(a, b int64) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, ErrUnknownID
	}
	j, ok := m.index[b]
	if !ok {
		return 0, ErrUnknownID
	}

	return m.data[i*len(m.ids)+j], nil
}
