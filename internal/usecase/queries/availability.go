package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"rentalhub/internal/domain/availability"
	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, listingID uuid.UUID) (*AvailabilityView, error)
	Quote(ctx context.Context, listingID uuid.UUID, start, end time.Time) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	listings     ListingReadStore
	reservations ReservationReadStore
	cache        shared.AvailabilityCache
	pricing      reservation.PriceCalculator
}

func NewAvailabilityQueries(
	listings ListingReadStore,
	reservations ReservationReadStore,
	cache shared.AvailabilityCache,
	pricing reservation.PriceCalculator,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		listings:     listings,
		reservations: reservations,
		cache:        cache,
		pricing:      pricing,
	}
}

// GetAvailability lists every booked day of the listing, ascending. A cached value is
// served when present; cache failures fall through to the store. The cache version is
// read before the store so that a write committed in between discards the refill.
func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, listingID uuid.UUID) (*AvailabilityView, error) {
	days, ok, err := q.cache.Get(ctx, listingID)
	if err != nil {
		slog.WarnContext(ctx, "availability cache read failed", "listing_id", listingID, "error", err)
	}
	if ok {
		return &AvailabilityView{ListingID: listingID, DisabledDays: days}, nil
	}

	version, err := q.cache.Version(ctx, listingID)
	fill := err == nil
	if err != nil {
		slog.WarnContext(ctx, "availability cache version read failed", "listing_id", listingID, "error", err)
	}

	if _, err := q.listings.FindByID(ctx, listingID); err != nil {
		return nil, classify(err, errs.ErrListingNotFound)
	}

	booked, err := q.reservations.BookedRanges(ctx, listingID)
	if err != nil {
		return nil, classify(err, nil)
	}
	days = availability.NewIndex(booked).DisabledDays()

	if fill {
		if err := q.cache.Set(ctx, listingID, version, days); err != nil {
			slog.WarnContext(ctx, "availability cache write failed", "listing_id", listingID, "error", err)
		}
	}
	return &AvailabilityView{ListingID: listingID, DisabledDays: days}, nil
}

// Quote prices a stay at the listing's nightly rate without checking availability.
func (q *availabilityQueriesImpl) Quote(ctx context.Context, listingID uuid.UUID, start, end time.Time) (*QuoteView, error) {
	if start.IsZero() || end.IsZero() {
		return nil, errs.ErrMissingFields
	}
	dates, err := daterange.New(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	l, err := q.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, classify(err, errs.ErrListingNotFound)
	}

	quote := q.pricing.Quote(reservation.NewMoney(l.Price), dates)
	return &QuoteView{
		ListingID:  listingID,
		Nights:     quote.Nights,
		TotalPrice: quote.TotalPrice.Amount(),
	}, nil
}
