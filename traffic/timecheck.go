// Package traffic: weekly coverage check over observation spans.
package traffic

import (
	"fmt"

	"github.com/katalvlaran/tollgrid/tollrate"
)

const secondsPerDay = 24 * 60 * 60

// fullWeekSpan is the exact offset between Monday 00:00:00 and Sunday
// 23:59:59: six days, 23 hours, 59 minutes, 59 seconds.
const fullWeekSpan = 6*secondsPerDay + int(tollrate.EndOfDay)

const opCheckTimeCoverage = "CheckTimeCoverage"

// CheckTimeCoverage reports, per (ID1, ID2) pair, whether every one of
// its observation spans covers the full week exactly — i.e. each span's
// start and end, projected onto a Monday-first week offset, are
// precisely 6d23h59m59s apart. A single narrower (or wrapped) span
// marks the whole pair false.
//
// Day names must be Monday…Sunday; anything else fails with
// tollrate.ErrUnknownDay and the row number.
func CheckTimeCoverage(records []SpanRecord) (map[Pair]bool, error) {
	out := make(map[Pair]bool, len(records))
	for row, r := range records {
		startDay, err := tollrate.DayIndex(r.StartDay)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opCheckTimeCoverage, row, err)
		}
		endDay, err := tollrate.DayIndex(r.EndDay)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opCheckTimeCoverage, row, err)
		}

		// Project both endpoints onto seconds-from-Monday-midnight and
		// require the exact full-week difference.
		startOffset := startDay*secondsPerDay + int(r.Start)
		endOffset := endDay*secondsPerDay + int(r.End)
		complete := endOffset-startOffset == fullWeekSpan

		key := Pair{ID1: r.ID1, ID2: r.ID2}
		if seen, ok := out[key]; ok {
			// Grouped-all semantics: every span of the pair must be complete.
			out[key] = seen && complete
			continue
		}
		out[key] = complete
	}

	return out, nil
}
