//go:build unit || e2e

package builder

import (
	"time"

	"rentalhub/internal/domain/listing"
	reqdto "rentalhub/internal/handler/dto/request"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListingBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   string
	ImageSrc      string
	Category      string
	RoomCount     int
	BathroomCount int
	GuestCount    int
	LocationValue string
	Price         int64
	CreatedAt     time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Title:         "Seaside cabin",
		Description:   "A quiet cabin by the sea",
		ImageSrc:      "https://example.com/cabin.jpg",
		Category:      "Beach",
		RoomCount:     2,
		BathroomCount: 1,
		GuestCount:    4,
		LocationValue: "JP",
		Price:         100,
		CreatedAt:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) attributes() listing.Attributes {
	return listing.Attributes{
		Category:      b.Category,
		RoomCount:     b.RoomCount,
		BathroomCount: b.BathroomCount,
		GuestCount:    b.GuestCount,
		LocationValue: b.LocationValue,
		Price:         b.Price,
	}
}

// Build methods
func (b *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.ReconstructListing(b.ID, b.OwnerID, b.Title, b.Description, b.ImageSrc, b.attributes(), b.CreatedAt)
}

func (b *ListingBuilder) BuildInfra() sqlc.Listings {
	return sqlc.Listings{
		ID:            b.ID,
		UserID:        b.OwnerID,
		Title:         b.Title,
		Description:   b.Description,
		ImageSrc:      b.ImageSrc,
		Category:      b.Category,
		RoomCount:     int32(b.RoomCount),
		BathroomCount: int32(b.BathroomCount),
		GuestCount:    int32(b.GuestCount),
		LocationValue: b.LocationValue,
		Price:         b.Price,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ListingBuilder) BuildReadModel() *queries.ListingView {
	return &queries.ListingView{
		ID:            b.ID,
		UserID:        b.OwnerID,
		Title:         b.Title,
		Description:   b.Description,
		ImageSrc:      b.ImageSrc,
		Category:      b.Category,
		RoomCount:     b.RoomCount,
		BathroomCount: b.BathroomCount,
		GuestCount:    b.GuestCount,
		LocationValue: b.LocationValue,
		Price:         b.Price,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *ListingBuilder) BuildDetail(ownerName string) *queries.ListingDetailView {
	return &queries.ListingDetailView{
		ListingView: *b.BuildReadModel(),
		Owner:       queries.UserSummary{ID: b.OwnerID, Name: ownerName},
	}
}

func (b *ListingBuilder) BuildInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Title:         b.Title,
		Description:   b.Description,
		ImageSrc:      b.ImageSrc,
		Category:      b.Category,
		RoomCount:     b.RoomCount,
		BathroomCount: b.BathroomCount,
		GuestCount:    b.GuestCount,
		LocationValue: b.LocationValue,
		Price:         b.Price,
	}
}

func (b *ListingBuilder) BuildDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Title:         b.Title,
		Description:   b.Description,
		ImageSrc:      b.ImageSrc,
		Category:      b.Category,
		RoomCount:     b.RoomCount,
		BathroomCount: b.BathroomCount,
		GuestCount:    b.GuestCount,
		LocationValue: b.LocationValue,
		Price:         b.Price,
	}
}

// Fluent builder methods
func (b *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	b.ID = id
	return b
}

func (b *ListingBuilder) WithOwner(ownerID uuid.UUID) *ListingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ListingBuilder) WithCategory(category string) *ListingBuilder {
	b.Category = category
	return b
}

func (b *ListingBuilder) WithPrice(price int64) *ListingBuilder {
	b.Price = price
	return b
}

func (b *ListingBuilder) WithCounts(rooms, bathrooms, guests int) *ListingBuilder {
	b.RoomCount = rooms
	b.BathroomCount = bathrooms
	b.GuestCount = guests
	return b
}

func (b *ListingBuilder) WithLocation(location string) *ListingBuilder {
	b.LocationValue = location
	return b
}

func (b *ListingBuilder) WithCreatedAt(t time.Time) *ListingBuilder {
	b.CreatedAt = t
	return b
}
