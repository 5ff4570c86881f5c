// Package tollgrid turns raw toll-station traffic tables into priced,
// analyzable datasets — from sparse edge lists to all-pairs distances,
// vehicle toll rates and time-window discounts.
//
// 🚏 What is tollgrid?
//
//	A small, deterministic, in-memory library of tabular transformations
//	over CSV-derived toll/traffic datasets:
//		• distmat  — all-pairs shortest distances (Floyd–Warshall),
//		  matrix unrolling, ±10% threshold filtering
//		• tollrate — per-vehicle linear toll rates and day/time
//		  discount windows
//		• traffic  — route-dataset pivots, congestion buckets,
//		  outlier and coverage checks
//		• dataset  — the CSV input boundary with fail-fast schema
//		  validation
//
// ✨ Design rules
//
//   - Pure functions over immutable snapshots: every stage reads its
//     input table and returns a new one; nothing mutates in place.
//   - Deterministic everywhere: sorted station order, stable sorts,
//     fixed relaxation order — identical inputs, identical outputs.
//   - Sentinel errors matched with errors.Is; no panics on user input.
//   - Single-threaded by design: the only resource concern is the
//     O(N³)/O(N²) distance build, which bounds practical network size.
//
// Start with distmat.Build, feed its Unroll output to tollrate, and use
// dataset to get from CSV files to typed records. The examples/
// directory walks through the full pipeline.
package tollgrid
