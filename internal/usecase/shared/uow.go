package shared

import (
	"context"
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/listing"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full read-committed transaction for write operations. No retries; failures surface to the caller.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Reservations() ReservationRepository
	Users() UserRepository
	Favorites() FavoriteRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	BookedRanges(ctx context.Context, listingID uuid.UUID) ([]daterange.DateRange, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// LockForUpdate takes the listing's row lock until the transaction ends.
	LockForUpdate(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Upsert(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, job NotificationJob) error
}

type NotificationJob struct {
	Kind        string
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	RunAt       time.Time
}
