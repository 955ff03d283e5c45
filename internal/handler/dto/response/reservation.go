package response

import (
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"listingId"`
	UserID     uuid.UUID `json:"userId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice int64     `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ListingSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	ImageSrc      string    `json:"imageSrc"`
	LocationValue string    `json:"locationValue"`
	OwnerID       uuid.UUID `json:"ownerId"`
}

type ReservationListItemResponse struct {
	ReservationResponse
	Listing ListingSummaryResponse `json:"listing"`
}

type AvailabilityResponse struct {
	ListingID    uuid.UUID `json:"listingId"`
	DisabledDays []string  `json:"disabledDays"`
}

type QuoteResponse struct {
	ListingID  uuid.UUID `json:"listingId"`
	Nights     int       `json:"nights"`
	TotalPrice int64     `json:"totalPrice"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		ListingID:  r.ListingID(),
		UserID:     r.UserID(),
		StartDate:  r.StartDate(),
		EndDate:    r.EndDate(),
		TotalPrice: r.TotalPrice().Amount(),
		CreatedAt:  r.CreatedAt(),
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationListItemResponse {
	out := make([]*ReservationListItemResponse, len(vs))
	for i, v := range vs {
		out[i] = &ReservationListItemResponse{
			ReservationResponse: *mustCopy[ReservationResponse](v),
			Listing:             *mustCopy[ListingSummaryResponse](&v.Listing),
		}
	}
	return out
}

// FromAvailability renders booked days as YYYY-MM-DD, ascending; never null.
func FromAvailability(v *queries.AvailabilityView) *AvailabilityResponse {
	days := make([]string, len(v.DisabledDays))
	for i, d := range v.DisabledDays {
		days[i] = d.Format(daterange.Layout)
	}
	return &AvailabilityResponse{ListingID: v.ListingID, DisabledDays: days}
}

func FromQuote(v *queries.QuoteView) *QuoteResponse {
	return mustCopy[QuoteResponse](v)
}
