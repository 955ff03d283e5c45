package request

import (
	"time"

	"rentalhub/internal/domain/listing"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/pkg/patch"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
)

const DefaultSearchLimit = 50

type CreateListingRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	Description   string `json:"description" binding:"required"`
	ImageSrc      string `json:"imageSrc" binding:"required"`
	Category      string `json:"category" binding:"required"`
	RoomCount     int    `json:"roomCount" binding:"required,min=1,max=2147483647"`
	BathroomCount int    `json:"bathroomCount" binding:"required,min=1,max=2147483647"`
	GuestCount    int    `json:"guestCount" binding:"required,min=1,max=2147483647"`
	LocationValue string `json:"locationValue" binding:"required"`
	Price         int64  `json:"price" binding:"required,min=1"`
}

func (r CreateListingRequest) ToInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Title:         r.Title,
		Description:   r.Description,
		ImageSrc:      r.ImageSrc,
		Category:      r.Category,
		RoomCount:     r.RoomCount,
		BathroomCount: r.BathroomCount,
		GuestCount:    r.GuestCount,
		LocationValue: r.LocationValue,
		Price:         r.Price,
	}
}

// SearchListingsQuery mirrors the listing search filters. Absent parameters leave
// the attribute unconstrained.
type SearchListingsQuery struct {
	UserID        *string `form:"userId"`
	Category      *string `form:"category"`
	RoomCount     *int    `form:"roomCount" binding:"omitempty,min=0,max=2147483647"`
	GuestCount    *int    `form:"guestCount" binding:"omitempty,min=0,max=2147483647"`
	BathroomCount *int    `form:"bathroomCount" binding:"omitempty,min=0,max=2147483647"`
	LocationValue *string `form:"locationValue"`
	MinPrice      *int64  `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice      *int64  `form:"maxPrice" binding:"omitempty,min=0"`
	StartDate     *string `form:"startDate"`
	EndDate       *string `form:"endDate"`
	Cursor        *string `form:"cursor"`
	Limit         *int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q SearchListingsQuery) ToFilters() (listing.SearchFilters, error) {
	f := listing.SearchFilters{
		Category:      q.Category,
		RoomCount:     q.RoomCount,
		GuestCount:    q.GuestCount,
		BathroomCount: q.BathroomCount,
		LocationValue: q.LocationValue,
		MinPrice:      q.MinPrice,
		MaxPrice:      q.MaxPrice,
	}
	if q.UserID != nil {
		id, err := ParseOptionalUUID(*q.UserID)
		if err != nil {
			return listing.SearchFilters{}, err
		}
		if id != uuid.Nil {
			f.UserID = &id
		}
	}
	var err error
	if f.StartDate, err = parseDatePtr(q.StartDate); err != nil {
		return listing.SearchFilters{}, err
	}
	if f.EndDate, err = parseDatePtr(q.EndDate); err != nil {
		return listing.SearchFilters{}, err
	}
	return f, nil
}

func (q SearchListingsQuery) ToPage() (queries.Page, error) {
	page, err := queries.NewPage(patch.Coalesce(q.Cursor, ""), patch.Coalesce(q.Limit, DefaultSearchLimit))
	if err != nil {
		return queries.Page{}, errs.Mark(errs.Wrap(err, "invalid cursor"), errs.ErrDomainValidation)
	}
	return page, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil || t.IsZero() {
		return nil, err
	}
	return &t, nil
}
