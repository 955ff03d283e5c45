package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	BookedRanges(ctx context.Context, listingID uuid.UUID) ([]daterange.DateRange, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// List returns reservations newest first. At least one filter is required.
func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	if filter.IsEmpty() {
		return nil, errs.ErrMissingFields
	}
	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, classify(err, nil)
	}
	return rows, nil
}
