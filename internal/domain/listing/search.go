package listing

import (
	"errors"
	"strings"
	"time"

	"rentalhub/internal/domain/availability"
	"rentalhub/internal/domain/daterange"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriceRange = errors.New("minimum price must not exceed maximum price")
	ErrCountOutOfRange   = errors.New("count filters must not exceed 2147483647")
)

// SearchFilters narrows a listing search. A nil field leaves that attribute unconstrained.
// Counts are lower bounds, LocationValue and Category are exact matches.
type SearchFilters struct {
	UserID        *uuid.UUID
	Category      *string
	RoomCount     *int
	GuestCount    *int
	BathroomCount *int
	LocationValue *string
	MinPrice      *int64
	MaxPrice      *int64
	StartDate     *time.Time
	EndDate       *time.Time
}

// Normalized drops blank strings and non-positive counts and truncates dates to calendar days.
func (f SearchFilters) Normalized() SearchFilters {
	out := f
	out.Category = blankToNil(f.Category)
	out.LocationValue = blankToNil(f.LocationValue)
	out.RoomCount = positiveOrNil(f.RoomCount)
	out.GuestCount = positiveOrNil(f.GuestCount)
	out.BathroomCount = positiveOrNil(f.BathroomCount)
	if f.UserID != nil && *f.UserID == uuid.Nil {
		out.UserID = nil
	}
	if f.StartDate != nil {
		d := daterange.Day(*f.StartDate)
		out.StartDate = &d
	}
	if f.EndDate != nil {
		d := daterange.Day(*f.EndDate)
		out.EndDate = &d
	}
	return out
}

func (f SearchFilters) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return daterange.ErrInvalidRange
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return ErrInvalidPriceRange
	}
	for _, n := range []*int{f.RoomCount, f.GuestCount, f.BathroomCount} {
		if n != nil && *n > MaxCount {
			return ErrCountOutOfRange
		}
	}
	return nil
}

// Window is the requested stay. It is present only when both dates are given;
// a single date does not constrain availability.
func (f SearchFilters) Window() (daterange.DateRange, bool) {
	if f.StartDate == nil || f.EndDate == nil {
		return daterange.DateRange{}, false
	}
	r, err := daterange.New(*f.StartDate, *f.EndDate)
	if err != nil {
		return daterange.DateRange{}, false
	}
	return r, true
}

// MatchesAttributes evaluates every filter except the date window.
func (f SearchFilters) MatchesAttributes(l *Listing) bool {
	a := l.Attributes()
	switch {
	case f.UserID != nil && l.OwnerID() != *f.UserID:
		return false
	case f.Category != nil && a.Category != *f.Category:
		return false
	case f.RoomCount != nil && a.RoomCount < *f.RoomCount:
		return false
	case f.GuestCount != nil && a.GuestCount < *f.GuestCount:
		return false
	case f.BathroomCount != nil && a.BathroomCount < *f.BathroomCount:
		return false
	case f.LocationValue != nil && a.LocationValue != *f.LocationValue:
		return false
	case f.MinPrice != nil && a.Price < *f.MinPrice:
		return false
	case f.MaxPrice != nil && a.Price > *f.MaxPrice:
		return false
	}
	return true
}

// Predicate is the in-memory form of the search: attribute filters conjoined with
// "no booked range overlaps the window".
func (f SearchFilters) Predicate() func(l *Listing, booked []daterange.DateRange) bool {
	window, hasWindow := f.Window()
	var free func([]daterange.DateRange) bool
	if hasWindow {
		free = availability.ConflictPredicate(window)
	}
	return func(l *Listing, booked []daterange.DateRange) bool {
		if !f.MatchesAttributes(l) {
			return false
		}
		return !hasWindow || free(booked)
	}
}

// Less orders search results: newest first, ties broken by id.
func Less(a, b *Listing) bool {
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().After(b.CreatedAt())
	}
	return a.ID().String() < b.ID().String()
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func positiveOrNil(n *int) *int {
	if n == nil || *n <= 0 {
		return nil
	}
	return n
}
