package listing

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrTitleTooLong     = errors.New("title is too long (max 255 characters)")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrEmptyLocation    = errors.New("location cannot be empty")
	ErrInvalidCount     = errors.New("room, bathroom and guest counts must be between 1 and 2147483647")
	ErrNonPositivePrice = errors.New("price must be positive")
	ErrMissingOwner     = errors.New("owner id is required")
)

const MaxTitleLength = 255

// MaxCount bounds room, bathroom and guest counts; they are stored as 32-bit integers.
const MaxCount = math.MaxInt32

// Attributes are the searchable properties of a listing.
type Attributes struct {
	Category      string
	RoomCount     int
	BathroomCount int
	GuestCount    int
	LocationValue string
	Price         int64
}

func (a Attributes) validate() error {
	if strings.TrimSpace(a.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(a.LocationValue) == "" {
		return ErrEmptyLocation
	}
	for _, n := range []int{a.RoomCount, a.BathroomCount, a.GuestCount} {
		if n < 1 || n > MaxCount {
			return ErrInvalidCount
		}
	}
	if a.Price <= 0 {
		return ErrNonPositivePrice
	}
	return nil
}

type Listing struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	description string
	imageSrc    string
	attributes  Attributes
	createdAt   time.Time
}

func NewListing(ownerID uuid.UUID, title, description, imageSrc string, attrs Attributes, now time.Time) (*Listing, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if err := attrs.validate(); err != nil {
		return nil, err
	}
	attrs.Category = strings.TrimSpace(attrs.Category)
	attrs.LocationValue = strings.TrimSpace(attrs.LocationValue)

	return &Listing{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		description: description,
		imageSrc:    strings.TrimSpace(imageSrc),
		attributes:  attrs,
		createdAt:   now,
	}, nil
}

func ReconstructListing(id, ownerID uuid.UUID, title, description, imageSrc string, attrs Attributes, createdAt time.Time) *Listing {
	return &Listing{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		imageSrc:    imageSrc,
		attributes:  attrs,
		createdAt:   createdAt,
	}
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && l.ownerID == userID
}

func (l *Listing) ID() uuid.UUID          { return l.id }
func (l *Listing) OwnerID() uuid.UUID     { return l.ownerID }
func (l *Listing) Title() string          { return l.title }
func (l *Listing) Description() string    { return l.description }
func (l *Listing) ImageSrc() string       { return l.imageSrc }
func (l *Listing) Attributes() Attributes { return l.attributes }
func (l *Listing) Price() int64           { return l.attributes.Price }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
