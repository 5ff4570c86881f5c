// Package dataset is the CSV input boundary: it turns the three source
// tables into typed record slices for the computation packages.
//
// Each loader validates the header before reading any row — a missing
// required column fails fast with ErrMissingColumn — and surfaces the
// first malformed cell with ErrBadValue and its 1-based row number.
// Extra columns and arbitrary column order are accepted; only the named
// columns are read.
//
// Loaders:
//
//   - LoadEdges: id_start, id_end, distance → []distmat.Edge.
//     Negative distances are rejected here, at ingestion, with
//     distmat.ErrNegativeDistance.
//   - LoadRoutes: id_1, id_2, route, moto, car, rv, bus, truck →
//     []traffic.RouteRecord.
//   - LoadSpans: id, id_2, startDay, startTime, endDay, endTime →
//     []traffic.SpanRecord, clock cells parsed as HH:MM:SS.
package dataset
