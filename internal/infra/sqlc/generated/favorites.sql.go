// source: favorites.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const addFavorite = `-- name: AddFavorite :exec
INSERT INTO favorites (user_id, listing_id)
VALUES ($1, $2)
ON CONFLICT (user_id, listing_id) DO NOTHING
`

type AddFavoriteParams struct {
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
}

func (q *Queries) AddFavorite(ctx context.Context, db DBTX, arg AddFavoriteParams) error {
	_, err := db.Exec(ctx, addFavorite, arg.UserID, arg.ListingID)
	return err
}

const listFavoriteListings = `-- name: ListFavoriteListings :many
SELECT l.id, l.user_id, l.title, l.description, l.image_src, l.category,
    l.room_count, l.bathroom_count, l.guest_count, l.location_value, l.price, l.created_at
FROM favorites f
JOIN listings l ON l.id = f.listing_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC, l.id
`

func (q *Queries) ListFavoriteListings(ctx context.Context, db DBTX, userID uuid.UUID) ([]Listings, error) {
	rows, err := db.Query(ctx, listFavoriteListings, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Listings
	for rows.Next() {
		i, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const removeFavorite = `-- name: RemoveFavorite :exec
DELETE FROM favorites
WHERE user_id = $1 AND listing_id = $2
`

type RemoveFavoriteParams struct {
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
}

func (q *Queries) RemoveFavorite(ctx context.Context, db DBTX, arg RemoveFavoriteParams) error {
	_, err := db.Exec(ctx, removeFavorite, arg.UserID, arg.ListingID)
	return err
}
