package readstore

import (
	"context"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/infra"
	"rentalhub/internal/infra/repository/converter"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
	"rentalhub/internal/usecase/queries"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationRangesByListing(ctx context.Context, db sqlc.DBTX, listingID uuid.UUID) ([]sqlc.ListReservationRangesByListingRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindSnapshot returns the reservation with its listing owner, for cancel authorization.
func (r *ReservationReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &shared.ReservationSnapshot{
		ID:             row.ID,
		ListingID:      row.ListingID,
		UserID:         row.UserID,
		ListingOwnerID: row.ListingOwnerID,
		Dates:          converter.DateRangeFromRow(row.StartDate, row.EndDate),
		TotalPrice:     row.TotalPrice,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ReservationReadStore) BookedRanges(ctx context.Context, listingID uuid.UUID) ([]daterange.DateRange, error) {
	rows, err := r.queries.ListReservationRangesByListing(ctx, r.db, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation ranges", err)
	}

	result := make([]daterange.DateRange, len(rows))
	for i, row := range rows {
		result[i] = converter.DateRangeFromRow(row.StartDate, row.EndDate)
	}
	return result, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsParams{
		ListingID: pgconv.UUIDPtrToPgtype(filter.ListingID),
		UserID:    pgconv.UUIDPtrToPgtype(filter.UserID),
		AuthorID:  pgconv.UUIDPtrToPgtype(filter.AuthorID),
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func toReservationView(row sqlc.ListReservationsRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:         row.ID,
		ListingID:  row.ListingID,
		UserID:     row.UserID,
		StartDate:  pgconv.DateFromPgtype(row.StartDate),
		EndDate:    pgconv.DateFromPgtype(row.EndDate),
		TotalPrice: row.TotalPrice,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		Listing: queries.ListingSummary{
			ID:            row.ListingID,
			Title:         row.ListingTitle,
			ImageSrc:      row.ListingImageSrc,
			LocationValue: row.ListingLocationValue,
			OwnerID:       row.ListingOwnerID,
		},
	}
}
