// Package tollrate: week-span stamping and discount-window application.
package tollrate

import (
	"fmt"

	"github.com/katalvlaran/tollgrid/distmat"
)

// Full-week stamp written onto every output record. The stamp is a span
// descriptor — "this row covers the whole week" — not a per-row actual
// window.
const (
	stampStartDay = "Monday"
	stampEndDay   = "Sunday"
)

const opAdjustTimeBased = "AdjustTimeBased"

// AdjustTimeBased produces the time-windowed rate table.
//
// Stage 1: restrict the input to the rows within ±10% of the reference
// station's average outgoing distance (distmat.WithinThreshold; the
// reference defaults to DefaultReferenceID, override via WithReference).
// Stage 2: stamp each surviving row with the full-week span
// Monday 00:00:00 → Sunday 23:59:59.
// Stage 3: walk the configured windows in order and, for every window
// whose span is contained in the stamped span and whose day class
// contains the stamped start day, multiply the row's distance by the
// window factor.
//
// Windows are independent masks: with the default table every row
// compounds through all three weekday factors (× 0.768 total) and the
// weekend factor never fires against the Monday stamp. See the package
// documentation before changing the window table.
//
// Returns distmat.ErrReferenceNotFound (wrapped) when the reference
// station has no outgoing rows.
func AdjustTimeBased(edges []distmat.Edge, opts ...Option) ([]TimeRecord, error) {
	o := gatherOptions(opts...)

	filtered, err := distmat.WithinThreshold(edges, o.reference)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAdjustTimeBased, err)
	}

	out := make([]TimeRecord, len(filtered))
	for i, e := range filtered {
		rec := TimeRecord{
			IDStart:   e.IDStart,
			IDEnd:     e.IDEnd,
			Distance:  e.Distance,
			StartDay:  stampStartDay,
			StartTime: Midnight,
			EndDay:    stampEndDay,
			EndTime:   EndOfDay,
		}

		for _, w := range o.windows {
			if !windowMatches(rec, w) {
				continue
			}
			rec.Distance *= w.Factor
		}

		out[i] = rec
	}

	return out, nil
}

// windowMatches evaluates one mask against a stamped record: the record
// span must contain the window span and the record's start day must
// belong to the window's day class.
func windowMatches(rec TimeRecord, w Window) bool {
	if rec.StartTime > w.Start || rec.EndTime < w.End {
		return false
	}

	weekend, err := IsWeekend(rec.StartDay)
	if err != nil {
		// Stamped days come from the fixed constants above; an unknown
		// name here is a programmer error in a custom pipeline, and the
		// mask simply does not match.
		return false
	}

	return weekend == w.Weekend
}
