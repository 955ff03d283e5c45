//go:build unit

package listing_test

import (
	"strings"
	"testing"
	"time"

	"rentalhub/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAttributes() listing.Attributes {
	return listing.Attributes{
		Category:      "Beach",
		RoomCount:     2,
		BathroomCount: 1,
		GuestCount:    4,
		LocationValue: "JP",
		Price:         100,
	}
}

func TestNewListing(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owner := uuid.New()

	t.Run("trims and keeps attributes", func(t *testing.T) {
		attrs := validAttributes()
		attrs.Category = " Beach "
		l, err := listing.NewListing(owner, "  Cabin ", " Quiet ", " img ", attrs, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, "Cabin", l.Title())
		assert.Equal(t, "Quiet", l.Description())
		assert.Equal(t, "img", l.ImageSrc())
		assert.Equal(t, "Beach", l.Attributes().Category)
		assert.Equal(t, int64(100), l.Price())
		assert.Equal(t, now, l.CreatedAt())
		assert.True(t, l.IsOwnedBy(owner))
		assert.False(t, l.IsOwnedBy(uuid.New()))
		assert.False(t, l.IsOwnedBy(uuid.Nil))
	})

	tests := []struct {
		name   string
		owner  uuid.UUID
		title  string
		desc   string
		mutate func(*listing.Attributes)
		errIs  error
	}{
		{"missing owner", uuid.Nil, "t", "d", nil, listing.ErrMissingOwner},
		{"blank title", owner, "  ", "d", nil, listing.ErrEmptyTitle},
		{"long title", owner, strings.Repeat("t", listing.MaxTitleLength+1), "d", nil, listing.ErrTitleTooLong},
		{"blank description", owner, "t", " ", nil, listing.ErrEmptyDescription},
		{"blank category", owner, "t", "d", func(a *listing.Attributes) { a.Category = "" }, listing.ErrEmptyCategory},
		{"blank location", owner, "t", "d", func(a *listing.Attributes) { a.LocationValue = " " }, listing.ErrEmptyLocation},
		{"zero rooms", owner, "t", "d", func(a *listing.Attributes) { a.RoomCount = 0 }, listing.ErrInvalidCount},
		{"zero guests", owner, "t", "d", func(a *listing.Attributes) { a.GuestCount = 0 }, listing.ErrInvalidCount},
		{"rooms beyond int32", owner, "t", "d", func(a *listing.Attributes) { a.RoomCount = 4294967297 }, listing.ErrInvalidCount},
		{"bathrooms beyond int32", owner, "t", "d", func(a *listing.Attributes) { a.BathroomCount = listing.MaxCount + 1 }, listing.ErrInvalidCount},
		{"zero price", owner, "t", "d", func(a *listing.Attributes) { a.Price = 0 }, listing.ErrNonPositivePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := validAttributes()
			if tt.mutate != nil {
				tt.mutate(&attrs)
			}
			l, err := listing.NewListing(tt.owner, tt.title, tt.desc, "", attrs, now)
			require.Nil(t, l)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}
