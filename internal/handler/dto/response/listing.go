package response

import (
	"time"

	"rentalhub/internal/domain/listing"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageSrc      string    `json:"imageSrc"`
	Category      string    `json:"category"`
	RoomCount     int       `json:"roomCount"`
	BathroomCount int       `json:"bathroomCount"`
	GuestCount    int       `json:"guestCount"`
	LocationValue string    `json:"locationValue"`
	Price         int64     `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
}

type OwnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}

type ListingDetailResponse struct {
	ListingResponse
	Owner OwnerResponse `json:"owner"`
}

type ListingPageResponse struct {
	Items      []*ListingResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return mustCopy[ListingResponse](v)
}

func FromListingViews(vs []*queries.ListingView) []*ListingResponse {
	return mustCopyAll[ListingResponse](vs)
}

func FromListingPage(vs []*queries.ListingView, next *string) *ListingPageResponse {
	return &ListingPageResponse{Items: FromListingViews(vs), NextCursor: next}
}

func FromListingDetail(v *queries.ListingDetailView) *ListingDetailResponse {
	return &ListingDetailResponse{
		ListingResponse: *FromListingView(&v.ListingView),
		Owner:           *mustCopy[OwnerResponse](&v.Owner),
	}
}

func FromListing(l *listing.Listing) *ListingResponse {
	a := l.Attributes()
	return &ListingResponse{
		ID:            l.ID(),
		UserID:        l.OwnerID(),
		Title:         l.Title(),
		Description:   l.Description(),
		ImageSrc:      l.ImageSrc(),
		Category:      a.Category,
		RoomCount:     a.RoomCount,
		BathroomCount: a.BathroomCount,
		GuestCount:    a.GuestCount,
		LocationValue: a.LocationValue,
		Price:         a.Price,
		CreatedAt:     l.CreatedAt(),
	}
}
