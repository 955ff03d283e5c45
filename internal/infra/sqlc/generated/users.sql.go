// source: users.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getUserByID = `-- name: GetUserByID :one
SELECT id, name, email, image, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, getUserByID, id)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateUserProfile = `-- name: UpdateUserProfile :one
UPDATE users
SET name = $2, image = $3, updated_at = $4
WHERE id = $1
RETURNING id, name, email, image, created_at, updated_at
`

type UpdateUserProfileParams struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Image     pgtype.Text        `json:"image"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (Users, error) {
	row := db.QueryRow(ctx, updateUserProfile,
		arg.ID,
		arg.Name,
		arg.Image,
		arg.UpdatedAt,
	)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertUser = `-- name: UpsertUser :one
INSERT INTO users (id, name, email, image)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
RETURNING id, name, email, image, created_at, updated_at
`

type UpsertUserParams struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email pgtype.Text `json:"email"`
	Image pgtype.Text `json:"image"`
}

func (q *Queries) UpsertUser(ctx context.Context, db DBTX, arg UpsertUserParams) (Users, error) {
	row := db.QueryRow(ctx, upsertUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Image,
	)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
