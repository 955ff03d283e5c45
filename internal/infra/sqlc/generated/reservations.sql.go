// source: reservations.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (id, user_id, listing_id, start_date, end_date, total_price, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, listing_id, start_date, end_date, total_price, created_at
`

type CreateReservationParams struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	ListingID  uuid.UUID          `json:"listing_id"`
	StartDate  pgtype.Date        `json:"start_date"`
	EndDate    pgtype.Date        `json:"end_date"`
	TotalPrice int64              `json:"total_price"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.UserID,
		arg.ListingID,
		arg.StartDate,
		arg.EndDate,
		arg.TotalPrice,
		arg.CreatedAt,
	)
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ListingID,
		&i.StartDate,
		&i.EndDate,
		&i.TotalPrice,
		&i.CreatedAt,
	)
	return i, err
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations
WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT r.id, r.user_id, r.listing_id, r.start_date, r.end_date, r.total_price, r.created_at,
    l.user_id AS listing_owner_id
FROM reservations r
JOIN listings l ON l.id = r.listing_id
WHERE r.id = $1
`

type GetReservationByIDRow struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	ListingID      uuid.UUID          `json:"listing_id"`
	StartDate      pgtype.Date        `json:"start_date"`
	EndDate        pgtype.Date        `json:"end_date"`
	TotalPrice     int64              `json:"total_price"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	ListingOwnerID uuid.UUID          `json:"listing_owner_id"`
}

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (GetReservationByIDRow, error) {
	row := db.QueryRow(ctx, getReservationByID, id)
	var i GetReservationByIDRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ListingID,
		&i.StartDate,
		&i.EndDate,
		&i.TotalPrice,
		&i.CreatedAt,
		&i.ListingOwnerID,
	)
	return i, err
}

const listReservationRangesByListing = `-- name: ListReservationRangesByListing :many
SELECT start_date, end_date
FROM reservations
WHERE listing_id = $1
ORDER BY start_date
`

type ListReservationRangesByListingRow struct {
	StartDate pgtype.Date `json:"start_date"`
	EndDate   pgtype.Date `json:"end_date"`
}

func (q *Queries) ListReservationRangesByListing(ctx context.Context, db DBTX, listingID uuid.UUID) ([]ListReservationRangesByListingRow, error) {
	rows, err := db.Query(ctx, listReservationRangesByListing, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReservationRangesByListingRow
	for rows.Next() {
		var i ListReservationRangesByListingRow
		if err := rows.Scan(&i.StartDate, &i.EndDate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listReservations = `-- name: ListReservations :many
SELECT r.id, r.user_id, r.listing_id, r.start_date, r.end_date, r.total_price, r.created_at,
    l.title AS listing_title, l.image_src AS listing_image_src,
    l.location_value AS listing_location_value, l.user_id AS listing_owner_id
FROM reservations r
JOIN listings l ON l.id = r.listing_id
WHERE ($1::uuid IS NULL OR r.listing_id = $1)
  AND ($2::uuid IS NULL OR r.user_id = $2)
  AND ($3::uuid IS NULL OR l.user_id = $3)
ORDER BY r.created_at DESC, r.id
`

type ListReservationsParams struct {
	ListingID pgtype.UUID `json:"listing_id"`
	UserID    pgtype.UUID `json:"user_id"`
	AuthorID  pgtype.UUID `json:"author_id"`
}

type ListReservationsRow struct {
	ID                   uuid.UUID          `json:"id"`
	UserID               uuid.UUID          `json:"user_id"`
	ListingID            uuid.UUID          `json:"listing_id"`
	StartDate            pgtype.Date        `json:"start_date"`
	EndDate              pgtype.Date        `json:"end_date"`
	TotalPrice           int64              `json:"total_price"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	ListingTitle         string             `json:"listing_title"`
	ListingImageSrc      string             `json:"listing_image_src"`
	ListingLocationValue string             `json:"listing_location_value"`
	ListingOwnerID       uuid.UUID          `json:"listing_owner_id"`
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]ListReservationsRow, error) {
	rows, err := db.Query(ctx, listReservations, arg.ListingID, arg.UserID, arg.AuthorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReservationsRow
	for rows.Next() {
		var i ListReservationsRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ListingID,
			&i.StartDate,
			&i.EndDate,
			&i.TotalPrice,
			&i.CreatedAt,
			&i.ListingTitle,
			&i.ListingImageSrc,
			&i.ListingLocationValue,
			&i.ListingOwnerID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
