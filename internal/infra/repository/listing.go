package repository

import (
	"context"

	"rentalhub/internal/domain/listing"
	"rentalhub/internal/infra"
	"rentalhub/internal/infra/repository/converter"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.Listings, error)
	DeleteListing(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetListingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) (uuid.UUID, error) {
	row, err := r.queries.CreateListing(ctx, r.db, converter.ListingToCreateParams(l))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return row.ID, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteListing(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockForUpdate reads the listing with SELECT ... FOR UPDATE. The lock lasts until the enclosing transaction ends.
func (r *ListingRepository) LockForUpdate(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	row, err := r.queries.GetListingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}
	return &shared.ListingSnapshot{
		ID:      row.ID,
		OwnerID: row.UserID,
		Price:   row.Price,
	}, nil
}
