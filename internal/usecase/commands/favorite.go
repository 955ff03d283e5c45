package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavoriteCommands interface {
	Add(ctx context.Context, principal auth.Principal, listingID uuid.UUID) error
	Remove(ctx context.Context, principal auth.Principal, listingID uuid.UUID) error
}

type favoriteUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewFavoriteUseCase(uow shared.UnitOfWork) FavoriteCommands {
	return &favoriteUseCaseImpl{uow: uow}
}

// Add is idempotent; favoriting twice leaves one entry.
func (uc *favoriteUseCaseImpl) Add(ctx context.Context, principal auth.Principal, listingID uuid.UUID) error {
	if !principal.IsAuthenticated() {
		return errs.ErrNotAuthorized
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ListingByID(ctx, listingID); err != nil {
			return err
		}
		return tx.Favorites().Add(ctx, principal.UserID, listingID)
	})
	return classify(err, errs.ErrListingNotFound)
}

// Remove is idempotent; removing an absent favorite succeeds.
func (uc *favoriteUseCaseImpl) Remove(ctx context.Context, principal auth.Principal, listingID uuid.UUID) error {
	if !principal.IsAuthenticated() {
		return errs.ErrNotAuthorized
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favorites().Remove(ctx, principal.UserID, listingID)
	})
	return classify(err, nil)
}
