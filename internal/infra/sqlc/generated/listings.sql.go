// source: listings.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createListing = `-- name: CreateListing :one
INSERT INTO listings (
    id, user_id, title, description, image_src, category,
    room_count, bathroom_count, guest_count, location_value, price, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, user_id, title, description, image_src, category,
    room_count, bathroom_count, guest_count, location_value, price, created_at
`

type CreateListingParams struct {
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

func (q *Queries) CreateListing(ctx context.Context, db DBTX, arg CreateListingParams) (Listings, error) {
	row := db.QueryRow(ctx, createListing,
		arg.ID,
		arg.UserID,
		arg.Title,
		arg.Description,
		arg.ImageSrc,
		arg.Category,
		arg.RoomCount,
		arg.BathroomCount,
		arg.GuestCount,
		arg.LocationValue,
		arg.Price,
		arg.CreatedAt,
	)
	return scanListing(row)
}

const deleteListing = `-- name: DeleteListing :execrows
DELETE FROM listings
WHERE id = $1
`

func (q *Queries) DeleteListing(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteListing, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getListingByID = `-- name: GetListingByID :one
SELECT id, user_id, title, description, image_src, category,
    room_count, bathroom_count, guest_count, location_value, price, created_at
FROM listings
WHERE id = $1
`

func (q *Queries) GetListingByID(ctx context.Context, db DBTX, id uuid.UUID) (Listings, error) {
	row := db.QueryRow(ctx, getListingByID, id)
	return scanListing(row)
}

const getListingForUpdate = `-- name: GetListingForUpdate :one
SELECT id, user_id, title, description, image_src, category,
    room_count, bathroom_count, guest_count, location_value, price, created_at
FROM listings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetListingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Listings, error) {
	row := db.QueryRow(ctx, getListingForUpdate, id)
	return scanListing(row)
}

const getListingDetail = `-- name: GetListingDetail :one
SELECT l.id, l.user_id, l.title, l.description, l.image_src, l.category,
    l.room_count, l.bathroom_count, l.guest_count, l.location_value, l.price, l.created_at,
    u.name AS owner_name, u.image AS owner_image
FROM listings l
JOIN users u ON u.id = l.user_id
WHERE l.id = $1
`

type GetListingDetailRow struct {
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
	OwnerName     string             `json:"owner_name"`
	OwnerImage    pgtype.Text        `json:"owner_image"`
}

func (q *Queries) GetListingDetail(ctx context.Context, db DBTX, id uuid.UUID) (GetListingDetailRow, error) {
	row := db.QueryRow(ctx, getListingDetail, id)
	var i GetListingDetailRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Title,
		&i.Description,
		&i.ImageSrc,
		&i.Category,
		&i.RoomCount,
		&i.BathroomCount,
		&i.GuestCount,
		&i.LocationValue,
		&i.Price,
		&i.CreatedAt,
		&i.OwnerName,
		&i.OwnerImage,
	)
	return i, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (Listings, error) {
	var i Listings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Title,
		&i.Description,
		&i.ImageSrc,
		&i.Category,
		&i.RoomCount,
		&i.BathroomCount,
		&i.GuestCount,
		&i.LocationValue,
		&i.Price,
		&i.CreatedAt,
	)
	return i, err
}
