package shared

import (
	"time"

	"rentalhub/internal/domain/daterange"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type ListingSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Price   int64
}

type ReservationSnapshot struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	UserID         uuid.UUID
	ListingOwnerID uuid.UUID
	Dates          daterange.DateRange
	TotalPrice     int64
	CreatedAt      time.Time
}
