package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ListingView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageSrc      string    `json:"imageSrc"`
	Category      string    `json:"category"`
	RoomCount     int       `json:"roomCount"`
	BathroomCount int       `json:"bathroomCount"`
	GuestCount    int       `json:"guestCount"`
	LocationValue string    `json:"locationValue"`
	Price         int64     `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}

type ListingDetailView struct {
	ListingView
	Owner UserSummary `json:"owner"`
}

type ListingSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	ImageSrc      string    `json:"imageSrc"`
	LocationValue string    `json:"locationValue"`
	OwnerID       uuid.UUID `json:"ownerId"`
}

type ReservationView struct {
	ID         uuid.UUID      `json:"id"`
	ListingID  uuid.UUID      `json:"listingId"`
	UserID     uuid.UUID      `json:"userId"`
	StartDate  time.Time      `json:"startDate"`
	EndDate    time.Time      `json:"endDate"`
	TotalPrice int64          `json:"totalPrice"`
	CreatedAt  time.Time      `json:"createdAt"`
	Listing    ListingSummary `json:"listing"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AvailabilityView struct {
	ListingID    uuid.UUID
	DisabledDays []time.Time
}

type QuoteView struct {
	ListingID  uuid.UUID
	Nights     int
	TotalPrice int64
}

// ReservationFilter selects reservations by listing, by guest, or by listing owner. Nil fields are ignored.
type ReservationFilter struct {
	ListingID *uuid.UUID
	UserID    *uuid.UUID
	AuthorID  *uuid.UUID
}

func (f ReservationFilter) IsEmpty() bool {
	return f.ListingID == nil && f.UserID == nil && f.AuthorID == nil
}
