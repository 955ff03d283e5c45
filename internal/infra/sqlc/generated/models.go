package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Favorites struct {
	UserID    uuid.UUID          `json:"user_id"`
	ListingID uuid.UUID          `json:"listing_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Listings struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	ImageSrc      string             `json:"image_src"`
	Category      string             `json:"category"`
	RoomCount     int32              `json:"room_count"`
	BathroomCount int32              `json:"bathroom_count"`
	GuestCount    int32              `json:"guest_count"`
	LocationValue string             `json:"location_value"`
	Price         int64              `json:"price"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type NotificationJobs struct {
	ID          uuid.UUID          `json:"id"`
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	Traceparent string             `json:"traceparent"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	Attempts    int32              `json:"attempts"`
	Status      string             `json:"status"`
	LastError   pgtype.Text        `json:"last_error"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Reservations struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	ListingID  uuid.UUID          `json:"listing_id"`
	StartDate  pgtype.Date        `json:"start_date"`
	EndDate    pgtype.Date        `json:"end_date"`
	TotalPrice int64              `json:"total_price"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     pgtype.Text        `json:"email"`
	Image     pgtype.Text        `json:"image"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
