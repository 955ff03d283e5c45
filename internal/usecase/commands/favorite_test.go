//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/infra/memory"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	owner := f.registeredUser(t)
	fan := f.registeredUser(t)
	listingID := f.listingOwnedBy(t, owner)
	favorites := queries.NewListingQueries(memory.NewListingReadStore(f.store))

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, f.favorites.Add(ctx, fan, listingID))
		require.NoError(t, f.favorites.Add(ctx, fan, listingID))

		views, err := favorites.Favorites(ctx, fan)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, listingID, views[0].ID)
	})

	t.Run("unknown listing", func(t *testing.T) {
		err := f.favorites.Add(ctx, fan, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrListingNotFound), "got %v", err)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, f.favorites.Remove(ctx, fan, listingID))
		require.NoError(t, f.favorites.Remove(ctx, fan, listingID))

		views, err := favorites.Favorites(ctx, fan)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("anonymous", func(t *testing.T) {
		assert.True(t, errs.Is(f.favorites.Add(ctx, auth.Principal{}, listingID), errs.ErrNotAuthorized))
		assert.True(t, errs.Is(f.favorites.Remove(ctx, auth.Principal{}, listingID), errs.ErrNotAuthorized))
	})
}
