// Package traffic holds the route-dataset table operations: pivoting
// per-pair car volumes into a dense matrix, bucketing congestion levels,
// flagging bus-volume outliers, filtering heavy-truck routes, and
// checking weekly time coverage of observation spans.
//
// Every function is a pure, single-pass transformation over an
// in-memory record slice; inputs are never mutated and group keys are
// emitted in sorted order so identical inputs yield identical outputs.
//
// The pivot matrix follows the same dense layout as distmat: a flat
// row-major []float64 plus ID→position indexes over sorted station
// universes, with absent combinations filled as 0.
package traffic
