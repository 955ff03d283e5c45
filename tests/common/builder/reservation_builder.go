//go:build unit || e2e

package builder

import (
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/reservation"
	reqdto "rentalhub/internal/handler/dto/request"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	UserID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice int64
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		UserID:     uuid.New(),
		StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice: 200,
		CreatedAt:  time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID,
		b.ListingID,
		b.UserID,
		daterange.MustNew(b.StartDate, b.EndDate),
		reservation.NewMoney(b.TotalPrice),
		b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInput() commands.SubmitReservationInput {
	return commands.SubmitReservationInput{
		ListingID:  b.ListingID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
	}
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		ListingID:  b.ListingID,
		UserID:     b.UserID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
		Listing:    queries.ListingSummary{ID: b.ListingID},
	}
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ListingID:  b.ListingID.String(),
		StartDate:  b.StartDate.Format(daterange.Layout),
		EndDate:    b.EndDate.Format(daterange.Layout),
		TotalPrice: b.TotalPrice,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithListing(listingID uuid.UUID) *ReservationBuilder {
	b.ListingID = listingID
	return b
}

func (b *ReservationBuilder) WithUser(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

// WithDates takes "2006-01-02" strings.
func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.StartDate, _ = time.Parse(daterange.Layout, start)
	b.EndDate, _ = time.Parse(daterange.Layout, end)
	return b
}

func (b *ReservationBuilder) WithTotalPrice(price int64) *ReservationBuilder {
	b.TotalPrice = price
	return b
}
