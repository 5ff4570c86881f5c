// Package dataset: header-indexed CSV readers.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tollgrid/distmat"
	"github.com/katalvlaran/tollgrid/tollrate"
	"github.com/katalvlaran/tollgrid/traffic"
)

// Sentinel errors for schema validation.
var (
	// ErrMissingColumn indicates a required header column is absent.
	// Loaders fail on this before parsing any data row.
	ErrMissingColumn = errors.New("dataset: required column missing")

	// ErrBadValue indicates a cell that does not parse as its column's
	// type; the wrapping error names the column and 1-based row.
	ErrBadValue = errors.New("dataset: malformed cell value")

	// ErrEmptyInput indicates a reader with no header row at all.
	ErrEmptyInput = errors.New("dataset: input has no header row")
)

// header maps column names to their positions in the CSV header row.
type header map[string]int

// readHeader consumes the first CSV record and verifies every required
// column is present.
func readHeader(r *csv.Reader, required []string) (header, error) {
	row, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: reading header: %w", err)
	}

	h := make(header, len(row))
	for pos, name := range row {
		h[name] = pos
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
	}

	return h, nil
}

// forEachRow streams the remaining records through fn with a 1-based
// data-row number for error reporting.
func forEachRow(r *csv.Reader, fn func(row int, rec []string) error) error {
	for row := 1; ; row++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("dataset: row %d: %w", row, err)
		}
		if err := fn(row, rec); err != nil {
			return err
		}
	}
}

func parseInt(h header, rec []string, col string, row int) (int64, error) {
	v, err := strconv.ParseInt(rec[h[col]], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q row %d: %q: %w", col, row, rec[h[col]], ErrBadValue)
	}

	return v, nil
}

func parseFloat(h header, rec []string, col string, row int) (float64, error) {
	v, err := strconv.ParseFloat(rec[h[col]], 64)
	if err != nil {
		return 0, fmt.Errorf("column %q row %d: %q: %w", col, row, rec[h[col]], ErrBadValue)
	}

	return v, nil
}

// LoadEdges reads the toll-network edge list. Required columns:
// id_start, id_end, distance. Negative distances are rejected at
// ingestion with distmat.ErrNegativeDistance, before any computation
// can observe them.
func LoadEdges(src io.Reader) ([]distmat.Edge, error) {
	r := csv.NewReader(src)
	r.ReuseRecord = true

	h, err := readHeader(r, []string{"id_start", "id_end", "distance"})
	if err != nil {
		return nil, err
	}

	var out []distmat.Edge
	err = forEachRow(r, func(row int, rec []string) error {
		start, err := parseInt(h, rec, "id_start", row)
		if err != nil {
			return err
		}
		end, err := parseInt(h, rec, "id_end", row)
		if err != nil {
			return err
		}
		dist, err := parseFloat(h, rec, "distance", row)
		if err != nil {
			return err
		}
		if dist < 0 {
			return fmt.Errorf("column %q row %d: %v: %w", "distance", row, dist, distmat.ErrNegativeDistance)
		}

		out = append(out, distmat.Edge{IDStart: start, IDEnd: end, Distance: dist})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LoadRoutes reads the route dataset. Required columns: id_1, id_2,
// route, moto, car, rv, bus, truck.
func LoadRoutes(src io.Reader) ([]traffic.RouteRecord, error) {
	r := csv.NewReader(src)
	r.ReuseRecord = true

	h, err := readHeader(r, []string{"id_1", "id_2", "route", "moto", "car", "rv", "bus", "truck"})
	if err != nil {
		return nil, err
	}

	var out []traffic.RouteRecord
	err = forEachRow(r, func(row int, rec []string) error {
		id1, err := parseInt(h, rec, "id_1", row)
		if err != nil {
			return err
		}
		id2, err := parseInt(h, rec, "id_2", row)
		if err != nil {
			return err
		}

		record := traffic.RouteRecord{ID1: id1, ID2: id2, Route: rec[h["route"]]}
		volumes := []struct {
			col string
			dst *float64
		}{
			{"moto", &record.Moto},
			{"car", &record.Car},
			{"rv", &record.RV},
			{"bus", &record.Bus},
			{"truck", &record.Truck},
		}
		for _, v := range volumes {
			f, err := parseFloat(h, rec, v.col, row)
			if err != nil {
				return err
			}
			*v.dst = f
		}

		out = append(out, record)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LoadSpans reads the observation-span dataset. Required columns: id,
// id_2, startDay, startTime, endDay, endTime; clock cells must be
// HH:MM:SS.
func LoadSpans(src io.Reader) ([]traffic.SpanRecord, error) {
	r := csv.NewReader(src)
	r.ReuseRecord = true

	h, err := readHeader(r, []string{"id", "id_2", "startDay", "startTime", "endDay", "endTime"})
	if err != nil {
		return nil, err
	}

	var out []traffic.SpanRecord
	err = forEachRow(r, func(row int, rec []string) error {
		id1, err := parseInt(h, rec, "id", row)
		if err != nil {
			return err
		}
		id2, err := parseInt(h, rec, "id_2", row)
		if err != nil {
			return err
		}
		start, err := tollrate.ParseTimeOfDay(rec[h["startTime"]])
		if err != nil {
			return fmt.Errorf("column %q row %d: %w", "startTime", row, err)
		}
		end, err := tollrate.ParseTimeOfDay(rec[h["endTime"]])
		if err != nil {
			return fmt.Errorf("column %q row %d: %w", "endTime", row, err)
		}

		out = append(out, traffic.SpanRecord{
			ID1:      id1,
			ID2:      id2,
			StartDay: rec[h["startDay"]],
			Start:    start,
			EndDay:   rec[h["endDay"]],
			End:      end,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
