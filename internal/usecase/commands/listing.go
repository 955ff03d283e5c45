package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/listing"
	"rentalhub/internal/pkg/clock"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingInput struct {
	Title         string
	Description   string
	ImageSrc      string
	Category      string
	RoomCount     int
	BathroomCount int
	GuestCount    int
	LocationValue string
	Price         int64
}

type ListingCommands interface {
	Create(ctx context.Context, principal auth.Principal, in CreateListingInput) (*listing.Listing, error)
	Delete(ctx context.Context, principal auth.Principal, listingID uuid.UUID) error
}

type listingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache shared.AvailabilityCache
}

func NewListingUseCase(uow shared.UnitOfWork, clk clock.Clock, cache shared.AvailabilityCache) ListingCommands {
	return &listingUseCaseImpl{uow: uow, clock: clk, cache: cache}
}

func (uc *listingUseCaseImpl) Create(ctx context.Context, principal auth.Principal, in CreateListingInput) (*listing.Listing, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrNotAuthorized
	}

	l, err := listing.NewListing(principal.UserID, in.Title, in.Description, in.ImageSrc, listing.Attributes{
		Category:      in.Category,
		RoomCount:     in.RoomCount,
		BathroomCount: in.BathroomCount,
		GuestCount:    in.GuestCount,
		LocationValue: in.LocationValue,
		Price:         in.Price,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Listings().Create(ctx, l)
		return err
	})
	if err != nil {
		return nil, classify(err, nil)
	}
	return l, nil
}

// Delete removes a listing and, by cascade, its reservations. Only the owner may delete.
// The listing lock keeps a concurrent admission from committing against a vanishing listing.
func (uc *listingUseCaseImpl) Delete(ctx context.Context, principal auth.Principal, listingID uuid.UUID) error {
	if !principal.IsAuthenticated() {
		return errs.ErrNotAuthorized
	}

	err := shared.WithListingLock(ctx, uc.uow, listingID, func(ctx context.Context, tx shared.Tx, l *shared.ListingSnapshot) error {
		if l.OwnerID != principal.UserID {
			return errs.ErrNotAuthorized
		}
		return tx.Listings().Delete(ctx, l.ID)
	})
	if err != nil {
		return classify(err, errs.ErrListingNotFound)
	}

	if err := uc.cache.Invalidate(ctx, listingID); err != nil {
		slog.WarnContext(ctx, "availability cache invalidation failed", "listing_id", listingID, "error", err)
	}
	return nil
}
