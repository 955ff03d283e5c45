package daterange

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidRange = errors.New("start date must not be after end date")

// DateRange is an inclusive span of calendar days. Both bounds are midnight UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// New normalizes both bounds to the calendar day they fall on and checks Start <= End.
func New(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidRange
	}
	r := DateRange{Start: Day(start), End: Day(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// MustNew panics on an invalid range. Intended for fixtures.
func MustNew(start, end time.Time) DateRange {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse builds a range from two YYYY-MM-DD strings.
func Parse(start, end string) (DateRange, error) {
	s, err := time.Parse(Layout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date: %w", err)
	}
	e, err := time.Parse(Layout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date: %w", err)
	}
	return New(s, e)
}

// Day truncates t to midnight UTC of the calendar day t shows in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps reports whether the two ranges share at least one calendar day.
// A checkout day equal to another range's check-in day counts as shared.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Overlaps is the symmetric function form of DateRange.Overlaps.
func Overlaps(a, b DateRange) bool {
	return a.Overlaps(b)
}

func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days yields every calendar day from Start to End inclusive. The sequence can be ranged over repeatedly.
func (r DateRange) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Len is the number of calendar days covered.
func (r DateRange) Len() int {
	return r.Nights() + 1
}

// Nights is the calendar-day difference between End and Start.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

func (r DateRange) String() string {
	return r.Start.Format(Layout) + ".." + r.End.Format(Layout)
}
