package converter

import (
	"rentalhub/internal/domain/listing"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	a := l.Attributes()
	return sqlc.CreateListingParams{
		ID:            l.ID(),
		UserID:        l.OwnerID(),
		Title:         l.Title(),
		Description:   l.Description(),
		ImageSrc:      l.ImageSrc(),
		Category:      a.Category,
		// listing.NewListing bounds counts by listing.MaxCount
		RoomCount:     int32(a.RoomCount),
		BathroomCount: int32(a.BathroomCount),
		GuestCount:    int32(a.GuestCount),
		LocationValue: a.LocationValue,
		Price:         a.Price,
		CreatedAt:     pgconv.TimeToPgtype(l.CreatedAt()),
	}
}

func ListingFromRow(row sqlc.Listings) *listing.Listing {
	return listing.ReconstructListing(
		row.ID,
		row.UserID,
		row.Title,
		row.Description,
		row.ImageSrc,
		listing.Attributes{
			Category:      row.Category,
			RoomCount:     int(row.RoomCount),
			BathroomCount: int(row.BathroomCount),
			GuestCount:    int(row.GuestCount),
			LocationValue: row.LocationValue,
			Price:         row.Price,
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
