// Package distmat: matrix → edge-list flattening.
package distmat

// Unroll flattens the matrix into one Edge per ordered pair of distinct
// stations, carrying the cumulative shortest-path distance.
//
// Both loops iterate the ascending station order, so the output is
// deterministic: for stations a < b the record (a,b, d) precedes (b,a, d).
// Self-pairs are omitted; the result holds exactly N·(N−1) records.
// Unreachable pairs keep their +Inf distance.
func (m *DistanceMatrix) Unroll() []Edge {
	n := len(m.ids)
	if n == 0 {
		return nil
	}

	out := make([]Edge, 0, n*(n-1))
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out = append(out, Edge{
				IDStart:  m.ids[i],
				IDEnd:    m.ids[j],
				Distance: m.data[base+j],
			})
		}
	}

	return out
}

// UnrollEdges builds the distance matrix for the raw edge list and
// unrolls it in one call, so callers holding only the sparse input get
// the same result as composing Build and Unroll themselves.
func UnrollEdges(edges []Edge) ([]Edge, error) {
	m, err := Build(edges)
	if err != nil {
		return nil, err
	}

	return m.Unroll(), nil
}
