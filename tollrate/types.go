// Package tollrate: record types, clock/day helpers, window table and
// functional options.
package tollrate

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
var (
	// ErrUnknownDay indicates a day name outside Monday…Sunday.
	ErrUnknownDay = errors.New("tollrate: unknown day name")

	// ErrBadClock indicates a clock value outside the 00:00:00…23:59:59
	// range (TimeOfDay carries seconds since midnight).
	ErrBadClock = errors.New("tollrate: clock value out of range")
)

// Vehicle-class rate coefficients applied by Calculate. Single source of
// truth; the values are fixed inputs, not runtime configuration.
const (
	MotoRate  = 0.8
	CarRate   = 1.2
	RVRate    = 1.5
	BusRate   = 2.2
	TruckRate = 3.6
)

// TollRecord is an unrolled edge record extended with one toll column
// per vehicle class; each column equals Distance × the class rate.
type TollRecord struct {
	IDStart  int64
	IDEnd    int64
	Distance float64
	Moto     float64
	Car      float64
	RV       float64
	Bus      float64
	Truck    float64
}

// TimeOfDay is a clock value expressed as seconds since midnight,
// 0 … 86399. It carries no date or zone semantics, which is exactly the
// contract of the window descriptors here.
type TimeOfDay int

// Clock boundaries used by the default windows.
const (
	Midnight TimeOfDay = 0
	EndOfDay TimeOfDay = 23*3600 + 59*60 + 59 // 23:59:59
)

// NewTimeOfDay builds a TimeOfDay from clock components, rejecting
// values outside 00:00:00…23:59:59 with ErrBadClock.
func NewTimeOfDay(h, m, s int) (TimeOfDay, error) {
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, fmt.Errorf("%02d:%02d:%02d: %w", h, m, s, ErrBadClock)
	}

	return TimeOfDay(h*3600 + m*60 + s), nil
}

// ParseTimeOfDay parses the table boundary format HH:MM:SS. Anything
// else, including out-of-range components, fails with ErrBadClock.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	if n, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil || n != 3 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadClock)
	}

	t, err := NewTimeOfDay(h, m, sec)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadClock)
	}

	return t, nil
}

// String renders the clock value as HH:MM:SS, the table boundary format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// Day names as they appear in the datasets, Monday first; positions are
// the 0-based offsets used by week arithmetic.
var dayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayIndex resolves a day name to its 0-based position in the
// Monday-first week, or ErrUnknownDay.
func DayIndex(name string) (int, error) {
	for i, d := range dayNames {
		if d == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownDay)
}

// IsWeekend reports whether the named day is Saturday or Sunday.
// Returns ErrUnknownDay for names outside the week.
func IsWeekend(name string) (bool, error) {
	i, err := DayIndex(name)
	if err != nil {
		return false, err
	}

	return i >= 5, nil
}

// Window is one discount predicate: a clock span, a weekday/weekend day
// class, and the multiplicative factor applied on match.
//
// A stamped record matches when its span contains the window's span
// (record start ≤ Window.Start and record end ≥ Window.End) and its
// start day belongs to the window's day class.
type Window struct {
	Start   TimeOfDay
	End     TimeOfDay
	Weekend bool // false → Monday–Friday class, true → Saturday/Sunday
	Factor  float64
}

// DefaultWindows returns the fixed discount table: three weekday clock
// intervals and one whole-day weekend interval. The slice is fresh on
// every call; callers may reorder or trim their copy freely.
func DefaultWindows() []Window {
	return []Window{
		{Start: Midnight, End: 10 * 3600, Weekend: false, Factor: 0.8},
		{Start: 10 * 3600, End: 18 * 3600, Weekend: false, Factor: 1.2},
		{Start: 18 * 3600, End: EndOfDay, Weekend: false, Factor: 0.8},
		{Start: Midnight, End: EndOfDay, Weekend: true, Factor: 0.7},
	}
}

// TimeRecord is a threshold-filtered edge record stamped with its
// covering span and carrying the window-adjusted distance.
type TimeRecord struct {
	IDStart   int64
	IDEnd     int64
	Distance  float64
	StartDay  string
	StartTime TimeOfDay
	EndDay    string
	EndTime   TimeOfDay
}

// DefaultReferenceID is the station whose average outgoing distance
// anchors AdjustTimeBased's threshold band when no option overrides it.
const DefaultReferenceID int64 = 1001400

// options holds the resolved AdjustTimeBased configuration.
type options struct {
	reference int64
	windows   []Window
}

// Option mutates AdjustTimeBased configuration. Setters are idempotent;
// last writer wins.
type Option func(*options)

// WithReference anchors the threshold band at the given station instead
// of DefaultReferenceID.
func WithReference(id int64) Option {
	return func(o *options) { o.reference = id }
}

// WithWindows replaces the default discount table. Windows are applied
// in slice order; an empty slice leaves distances unchanged.
func WithWindows(ws []Window) Option {
	return func(o *options) { o.windows = ws }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		reference: DefaultReferenceID,
		windows:   DefaultWindows(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
