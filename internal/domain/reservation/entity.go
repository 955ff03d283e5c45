package reservation

import (
	"errors"
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNonPositivePrice = errors.New("total price must be positive")
	ErrMissingListing   = errors.New("listing id is required")
	ErrMissingUser      = errors.New("user id is required")
)

type Services struct {
	Clock clock.Clock
}

// Reservation is immutable once created; cancellation deletes it.
type Reservation struct {
	id         uuid.UUID
	listingID  uuid.UUID
	userID     uuid.UUID
	dateRange  daterange.DateRange
	totalPrice Money
	createdAt  time.Time
}

func NewReservation(
	services *Services,
	listingID uuid.UUID,
	userID uuid.UUID,
	dates daterange.DateRange,
	totalPrice Money,
) (*Reservation, error) {
	if listingID == uuid.Nil {
		return nil, ErrMissingListing
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if err := dates.Validate(); err != nil {
		return nil, err
	}
	if !totalPrice.IsPositive() {
		return nil, ErrNonPositivePrice
	}

	return &Reservation{
		id:         uuid.New(),
		listingID:  listingID,
		userID:     userID,
		dateRange:  dates,
		totalPrice: totalPrice,
		createdAt:  services.Clock.Now(),
	}, nil
}

func ReconstructReservation(
	id, listingID, userID uuid.UUID,
	dates daterange.DateRange,
	totalPrice Money,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		listingID:  listingID,
		userID:     userID,
		dateRange:  dates,
		totalPrice: totalPrice,
		createdAt:  createdAt,
	}
}

// CanBeCancelledBy reports whether userID is the guest or the owner of the reserved listing.
func (r *Reservation) CanBeCancelledBy(userID, listingOwnerID uuid.UUID) bool {
	return userID != uuid.Nil && (userID == r.userID || userID == listingOwnerID)
}

func (r *Reservation) HasEnded(now time.Time) bool {
	return daterange.Day(now).After(r.dateRange.End)
}

func (r *Reservation) ID() uuid.UUID                  { return r.id }
func (r *Reservation) ListingID() uuid.UUID           { return r.listingID }
func (r *Reservation) UserID() uuid.UUID              { return r.userID }
func (r *Reservation) DateRange() daterange.DateRange { return r.dateRange }
func (r *Reservation) StartDate() time.Time           { return r.dateRange.Start }
func (r *Reservation) EndDate() time.Time             { return r.dateRange.End }
func (r *Reservation) TotalPrice() Money              { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time           { return r.createdAt }
