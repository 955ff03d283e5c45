package request

import (
	"strings"
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// CreateReservationRequest has no binding tags; presence and ordering are checked by the admission controller.
type CreateReservationRequest struct {
	ListingID  string `json:"listingId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	TotalPrice int64  `json:"totalPrice"`
}

func (r CreateReservationRequest) ToInput() (commands.SubmitReservationInput, error) {
	listingID, err := ParseOptionalUUID(r.ListingID)
	if err != nil {
		return commands.SubmitReservationInput{}, err
	}
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return commands.SubmitReservationInput{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return commands.SubmitReservationInput{}, err
	}
	return commands.SubmitReservationInput{
		ListingID:  listingID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: r.TotalPrice,
	}, nil
}

type ListReservationsQuery struct {
	ListingID string `form:"listingId"`
	UserID    string `form:"userId"`
	AuthorID  string `form:"authorId"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	var f queries.ReservationFilter
	var err error
	if f.ListingID, err = parseUUIDPtr(q.ListingID); err != nil {
		return f, err
	}
	if f.UserID, err = parseUUIDPtr(q.UserID); err != nil {
		return f, err
	}
	if f.AuthorID, err = parseUUIDPtr(q.AuthorID); err != nil {
		return f, err
	}
	return f, nil
}

type QuoteQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (q QuoteQuery) Dates() (time.Time, time.Time, error) {
	start, err := ParseDate(q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. An empty string is the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(daterange.Layout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), errs.ErrDomainValidation)
	}
	return t, nil
}

// ParseOptionalUUID returns uuid.Nil for an empty string.
func ParseOptionalUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrapf(err, "parse id %q", s), errs.ErrDomainValidation)
	}
	return id, nil
}

func parseUUIDPtr(s string) (*uuid.UUID, error) {
	id, err := ParseOptionalUUID(s)
	if err != nil || id == uuid.Nil {
		return nil, err
	}
	return &id, nil
}
