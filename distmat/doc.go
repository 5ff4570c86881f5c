// Package distmat builds all-pairs shortest-distance tables from sparse
// toll-station edge lists and derives edge-list views from them.
//
// Overview:
//
//   - Build ingests an undirected edge list (id_start, id_end, distance)
//     and produces a dense DistanceMatrix via Floyd–Warshall relaxation.
//   - Unroll flattens the matrix back into one record per ordered pair
//     of distinct stations, giving cumulative (shortest-path) distances.
//   - WithinThreshold selects the unrolled records whose distance lies
//     within ±10% of a reference station's average outgoing distance.
//
// The matrix uses +Inf as the "no path" sentinel off-diagonal and a zero
// diagonal; after Build it is symmetric and saturates the triangle
// inequality (no i,k,j remains with dist[i][k]+dist[k][j] < dist[i][j]).
//
// Determinism:
//
//   - Station IDs are indexed in ascending order, and every derived view
//     iterates that order, so identical inputs yield identical outputs.
//   - Duplicate input edges follow a last-write-wins policy (no
//     aggregation); self-loops never displace the zero diagonal.
//
// Complexity:
//
//   - Build: O(N³) time, O(N²) space for N distinct stations. This is a
//     dense, exact APSP; it bounds the practical station-set size and is
//     intentional — no sparse or early-exit variant is offered here.
//   - Unroll: O(N²). WithinThreshold: O(E) plus a stable sort.
//
// Errors (sentinel, matched with errors.Is):
//
//   - ErrNegativeDistance — an input edge carries a negative weight,
//     which invalidates shortest-path semantics.
//   - ErrNonFiniteDistance — an input edge weight is NaN or ±Inf.
//   - ErrUnknownID — a lookup names a station absent from the matrix.
//   - ErrReferenceNotFound — the threshold filter's reference station
//     has no outgoing rows, so no average exists.
package distmat
