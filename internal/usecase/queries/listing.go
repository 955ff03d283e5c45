package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/listing"
	"rentalhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type ListingQueries interface {
	Search(ctx context.Context, filters listing.SearchFilters, page Page) ([]*ListingView, *string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ListingDetailView, error)
	Favorites(ctx context.Context, principal auth.Principal) ([]*ListingView, error)
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingDetailView, error)
	Search(ctx context.Context, filters listing.SearchFilters, page Page) ([]*ListingView, error)
	FavoritesOf(ctx context.Context, userID uuid.UUID) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

// Search returns listings matching every given filter, newest first. With both dates set,
// listings holding any reservation that overlaps the window are excluded.
// The second result is the cursor for the next page when the page was full.
func (q *listingQueriesImpl) Search(ctx context.Context, filters listing.SearchFilters, page Page) ([]*ListingView, *string, error) {
	f := filters.Normalized()
	if err := f.Validate(); err != nil {
		if errs.Is(err, daterange.ErrInvalidRange) {
			return nil, nil, errs.Mark(err, errs.ErrInvalidDateRange)
		}
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	rows, err := q.store.Search(ctx, f, page)
	if err != nil {
		return nil, nil, classify(err, nil)
	}

	var next *string
	if page.Limit > 0 && len(rows) == page.Limit {
		last := rows[len(rows)-1]
		c := EncodeAfterCursor(last.CreatedAt, last.ID)
		next = &c
	}
	return rows, next, nil
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingDetailView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, errs.ErrListingNotFound)
	}
	return v, nil
}

func (q *listingQueriesImpl) Favorites(ctx context.Context, principal auth.Principal) ([]*ListingView, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrNotAuthorized
	}
	rows, err := q.store.FavoritesOf(ctx, principal.UserID)
	if err != nil {
		return nil, classify(err, nil)
	}
	return rows, nil
}
