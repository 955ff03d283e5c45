package repository

import (
	"context"

	"rentalhub/internal/infra"
	sqlc "rentalhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FavoriteWriteQueries interface {
	AddFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.AddFavoriteParams) error
	RemoveFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.RemoveFavoriteParams) error
}

type FavoriteRepository struct {
	queries FavoriteWriteQueries
	db      sqlc.DBTX
}

func NewFavoriteRepository(queries FavoriteWriteQueries, db sqlc.DBTX) *FavoriteRepository {
	return &FavoriteRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	err := r.queries.AddFavorite(ctx, r.db, sqlc.AddFavoriteParams{UserID: userID, ListingID: listingID})
	if err != nil {
		return infra.WrapRepoErr("failed to add favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	err := r.queries.RemoveFavorite(ctx, r.db, sqlc.RemoveFavoriteParams{UserID: userID, ListingID: listingID})
	if err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err)
	}
	return nil
}
