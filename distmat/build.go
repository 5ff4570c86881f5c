// Package distmat: edge-list ingestion and Floyd–Warshall closure.
//
// Contract:
//   - The station universe is the union of both ID columns, sorted
//     ascending for deterministic indexing.
//   - +Inf means "no path" off-diagonal; the diagonal is always 0.
//   - The relaxation loop order is fixed (k → i → j); k MUST stay the
//     outermost loop for the closure to be correct.
package distmat

import (
	"fmt"
	"math"
	"sort"
)

const opBuild = "Build"

// Build constructs the all-pairs shortest-distance matrix for the given
// undirected edge list.
//
// Stage 1 (Validate): every edge weight must be finite and ≥ 0.
// Stage 2 (Prepare): collect the sorted station universe, allocate the
// dense matrix with a zero diagonal and +Inf elsewhere.
// Stage 3 (Seed): write each edge into both (a,b) and (b,a) cells;
// duplicate pairs follow last-write-wins, self-loops are dropped so the
// diagonal stays 0.
// Stage 4 (Execute): run Floyd–Warshall in place.
//
// An empty edge list yields an empty (0×0) matrix and no error.
//
// Complexity: O(N³) time, O(N²) space for N distinct stations.
func Build(edges []Edge) (*DistanceMatrix, error) {
	// Validate weights up front; a single bad row aborts the whole build
	// before any allocation proportional to N².
	for r, e := range edges {
		if math.IsNaN(e.Distance) || math.IsInf(e.Distance, 0) {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", opBuild, r, e.IDStart, e.IDEnd, ErrNonFiniteDistance)
		}
		if e.Distance < 0 {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", opBuild, r, e.IDStart, e.IDEnd, ErrNegativeDistance)
		}
	}

	// Collect the station universe from both endpoint columns.
	seen := make(map[int64]struct{}, len(edges)*2)
	for _, e := range edges {
		seen[e.IDStart] = struct{}{}
		seen[e.IDEnd] = struct{}{}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	n := len(ids)
	index := make(map[int64]int, n)
	for pos, id := range ids {
		index[id] = pos
	}

	// Initialize: diagonal 0, everything else +Inf ("no path" yet).
	data := make([]float64, n*n)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			if i == j {
				data[base+j] = 0
				continue
			}
			data[base+j] = inf
		}
	}

	// Seed direct edges symmetrically; later rows overwrite earlier ones
	// for the same pair (last-write-wins, no aggregation).
	for _, e := range edges {
		i, j := index[e.IDStart], index[e.IDEnd]
		if i == j {
			// Self-loops cannot beat the zero diagonal.
			continue
		}
		data[i*n+j] = e.Distance
		data[j*n+i] = e.Distance
	}

	m := &DistanceMatrix{ids: ids, index: index, data: data}
	floydWarshallInPlace(m)

	return m, nil
}

// floydWarshallInPlace runs the APSP closure on m's flat buffer.
//
// Loop order is fixed (k → i → j) for correct iterative relaxation and
// deterministic accumulation. Rows unreachable from k are skipped early
// so fully disconnected components cost only the scan.
//
// Time: O(n³); extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(m *DistanceMatrix) {
	n := len(m.ids)

	// Predeclare loop counters and temporaries; nothing escapes.
	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j], candidate via k
	)

	data := m.data

	for k = 0; k < n; k++ { // outer: intermediate station k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source station i
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination station j
				kj = data[baseK+j]
				if math.IsInf(kj, 1) { // k cannot reach j
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}
