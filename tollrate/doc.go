// Package tollrate derives toll prices from cumulative station-pair
// distances: fixed per-vehicle linear rates and day/time discount
// windows.
//
// Overview:
//
//   - Calculate extends every unrolled edge record with one toll column
//     per vehicle class, each equal to distance × a fixed coefficient
//     (moto 0.8, car 1.2, rv 1.5, bus 2.2, truck 3.6).
//   - AdjustTimeBased restricts the input to the ±10% band around a
//     reference station (distmat.WithinThreshold), stamps each survivor
//     with the full-week span Monday 00:00:00 → Sunday 23:59:59, and
//     then multiplies its distance by every discount window whose
//     predicate the stamped span satisfies.
//
// Window semantics — read this before relying on the numbers:
//
//	The configured windows are evaluated as independent masks, not as
//	mutually exclusive buckets. Because every record is stamped with the
//	whole-day span and a Monday start day, all three weekday windows
//	match at once and the distance compounds to
//	0.8 × 1.2 × 0.8 = 0.768 of its input value, while the weekend
//	window never matches the Monday stamp. This stacking is the
//	function's contract; callers expecting exactly one bucket per record
//	must select windows themselves before applying factors.
//
// All functions are pure: inputs are never mutated, outputs are fresh
// slices, and identical inputs always produce identical outputs.
//
// Errors (sentinel, matched with errors.Is):
//
//   - distmat.ErrReferenceNotFound — AdjustTimeBased's reference station
//     has no outgoing rows (propagated from the threshold filter).
//   - ErrUnknownDay — a day name outside Monday…Sunday was supplied.
//   - ErrBadClock — a clock value outside 00:00:00…23:59:59.
package tollrate
