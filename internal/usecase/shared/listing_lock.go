package shared

import (
	"context"

	"github.com/google/uuid"
)

// WithListingLock runs fn in one transaction that holds the listing's exclusive lock from
// the moment the listing is read until commit or rollback. Calls for different listings
// never wait on each other. Errors from LockForUpdate (including not-found) are returned unchanged.
func WithListingLock(
	ctx context.Context,
	uow UnitOfWork,
	listingID uuid.UUID,
	fn func(ctx context.Context, tx Tx, l *ListingSnapshot) error,
) error {
	return uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		snap, err := tx.Listings().LockForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		return fn(ctx, tx, snap)
	})
}
