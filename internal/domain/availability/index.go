package availability

import (
	"slices"
	"sort"
	"time"

	"rentalhub/internal/domain/daterange"
)

// Index answers overlap questions against the booked ranges of one listing.
// It is immutable once built and safe for concurrent readers.
type Index struct {
	booked []daterange.DateRange
	// maxEnd[i] is the latest End among booked[0..i].
	maxEnd []time.Time
}

func NewIndex(booked []daterange.DateRange) *Index {
	sorted := slices.Clone(booked)
	slices.SortFunc(sorted, func(a, b daterange.DateRange) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})

	maxEnd := make([]time.Time, len(sorted))
	for i, r := range sorted {
		maxEnd[i] = r.End
		if i > 0 && maxEnd[i-1].After(r.End) {
			maxEnd[i] = maxEnd[i-1]
		}
	}

	return &Index{booked: sorted, maxEnd: maxEnd}
}

func (x *Index) Len() int {
	return len(x.booked)
}

// IsAvailable reports whether r overlaps none of the booked ranges.
func (x *Index) IsAvailable(r daterange.DateRange) bool {
	// Only ranges starting on or before r.End can overlap.
	n := x.startsThrough(r.End)
	if n == 0 {
		return true
	}
	return x.maxEnd[n-1].Before(r.Start)
}

// Conflicts returns the booked ranges overlapping r, ordered by start.
func (x *Index) Conflicts(r daterange.DateRange) []daterange.DateRange {
	n := x.startsThrough(r.End)
	var out []daterange.DateRange
	for _, b := range x.booked[:n] {
		if !b.End.Before(r.Start) {
			out = append(out, b)
		}
	}
	return out
}

// DisabledDays returns every day covered by some booked range, ascending and without duplicates.
func (x *Index) DisabledDays() []time.Time {
	days := make([]time.Time, 0, len(x.booked))
	for i, b := range x.booked {
		from := b.Start
		// Skip the prefix already emitted by earlier overlapping ranges.
		if i > 0 && !x.maxEnd[i-1].Before(from) {
			from = x.maxEnd[i-1].AddDate(0, 0, 1)
		}
		for d := from; !d.After(b.End); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
	}
	return days
}

func (x *Index) startsThrough(t time.Time) int {
	return sort.Search(len(x.booked), func(i int) bool {
		return x.booked[i].Start.After(t)
	})
}

// IsAvailable is a convenience over NewIndex for a single check.
func IsAvailable(booked []daterange.DateRange, r daterange.DateRange) bool {
	for _, b := range booked {
		if b.Overlaps(r) {
			return false
		}
	}
	return true
}

// ConflictPredicate returns a test that is true iff none of the given booked ranges overlaps search.
// Search filtering uses it to drop listings that cannot host the requested dates.
func ConflictPredicate(search daterange.DateRange) func(booked []daterange.DateRange) bool {
	return func(booked []daterange.DateRange) bool {
		return IsAvailable(booked, search)
	}
}
