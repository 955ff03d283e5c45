//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/listing"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/queries"
	"rentalhub/tests/common/builder"
	queriesmock "rentalhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListingSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("full page yields a cursor at the last row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewListingQueries(store)

		a := builder.NewListingBuilder().WithCreatedAt(day("2024-02-01")).BuildReadModel()
		b := builder.NewListingBuilder().WithCreatedAt(day("2024-01-01")).BuildReadModel()
		page := queries.Page{Limit: 2}
		store.EXPECT().Search(gomock.Any(), listing.SearchFilters{}, page).Return([]*queries.ListingView{a, b}, nil)

		rows, next, err := q.Search(ctx, listing.SearchFilters{}, page)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(*next)
		require.NoError(t, err)
		assert.Equal(t, b.ID, id)
		assert.True(t, at.Equal(b.CreatedAt))
	})

	t.Run("short page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewListingQueries(store)

		store.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.ListingView{builder.NewListingBuilder().BuildReadModel()}, nil)

		_, next, err := q.Search(ctx, listing.SearchFilters{}, queries.Page{Limit: 5})
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("filters reach the store normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewListingQueries(store)

		blank := " "
		rooms := 0
		store.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f listing.SearchFilters, _ queries.Page) ([]*queries.ListingView, error) {
				assert.Nil(t, f.Category)
				assert.Nil(t, f.RoomCount)
				return nil, nil
			})

		_, _, err := q.Search(ctx, listing.SearchFilters{Category: &blank, RoomCount: &rooms}, queries.Page{})
		require.NoError(t, err)
	})

	t.Run("inverted window is rejected before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewListingQueries(store)

		start, end := day("2024-06-05"), day("2024-06-01")
		_, _, err := q.Search(ctx, listing.SearchFilters{StartDate: &start, EndDate: &end}, queries.Page{})
		require.True(t, errs.Is(err, errs.ErrInvalidDateRange))
	})

	t.Run("inverted price bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewListingQueries(queriesmock.NewMockListingReadStore(ctrl))

		lo, hi := int64(200), int64(100)
		_, _, err := q.Search(ctx, listing.SearchFilters{MinPrice: &lo, MaxPrice: &hi}, queries.Page{})
		require.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("count beyond the stored range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewListingQueries(queriesmock.NewMockListingReadStore(ctrl))

		rooms := listing.MaxCount + 1
		_, _, err := q.Search(ctx, listing.SearchFilters{RoomCount: &rooms}, queries.Page{})
		require.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestListingFavorites(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewListingQueries(queriesmock.NewMockListingReadStore(ctrl))

		_, err := q.Favorites(ctx, auth.Principal{})
		require.True(t, errs.Is(err, errs.ErrNotAuthorized))
	})

	t.Run("reads the principal's favorites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewListingQueries(store)

		userID := uuid.New()
		want := []*queries.ListingView{builder.NewListingBuilder().BuildReadModel()}
		store.EXPECT().FavoritesOf(gomock.Any(), userID).Return(want, nil)

		got, err := q.Favorites(ctx, auth.Principal{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestNewPage(t *testing.T) {
	id := uuid.New()
	at := time.Date(2024, 3, 1, 10, 30, 0, 123456000, time.UTC)

	p, err := queries.NewPage(queries.EncodeAfterCursor(at, id), 500)
	require.NoError(t, err)
	assert.Equal(t, queries.MaxListLimit, p.Limit)
	assert.Equal(t, id, p.AfterID)
	assert.True(t, p.AfterCreatedAt.Equal(at))
	assert.True(t, p.HasCursor())

	_, err = queries.NewPage("not-a-cursor", 10)
	require.Error(t, err)
}
