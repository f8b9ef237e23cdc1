package taxengine

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for period bounds
const DateLayout = "2006-01-02"

// Period is an inclusive reporting window of whole days
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod truncates both bounds to UTC dates and rejects an inverted window
func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: toDate(start), End: toDate(end)}
	if p.Start.IsZero() || p.End.IsZero() {
		return Period{}, fmt.Errorf("%w: both bounds are required", ErrInvalidPeriod)
	}
	if p.End.Before(p.Start) {
		return Period{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidPeriod, p.End.Format(DateLayout), p.Start.Format(DateLayout))
	}
	return p, nil
}

// ParsePeriod builds a Period from two YYYY-MM-DD strings
func ParsePeriod(start, end string) (Period, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Period{}, fmt.Errorf("%w: period_start: %v", ErrInvalidPeriod, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Period{}, fmt.Errorf("%w: period_end: %v", ErrInvalidPeriod, err)
	}
	return NewPeriod(s, e)
}

// Contains reports whether t falls inside the window, both ends inclusive
func (p Period) Contains(t time.Time) bool {
	d := toDate(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// ContainsMonth reports whether the first day of the given month is inside
// the window. A window starting mid-month therefore excludes that month.
func (p Period) ContainsMonth(year, month int) bool {
	return p.Contains(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
}

// Years returns the calendar years the window touches
func (p Period) Years() (from, to int) {
	return p.Start.Year(), p.End.Year()
}

func (p Period) String() string {
	return p.Start.Format(DateLayout) + ".." + p.End.Format(DateLayout)
}

func toDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
