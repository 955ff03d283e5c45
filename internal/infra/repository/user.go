package repository

import (
	"context"

	"rentalhub/internal/domain/user"
	"rentalhub/internal/infra"
	"rentalhub/internal/infra/repository/converter"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	UpsertUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserParams) (sqlc.Users, error)
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert inserts the profile or returns the stored one unchanged.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.UpsertUser(ctx, r.db, sqlc.UpsertUserParams{
		ID:    u.ID(),
		Name:  u.Name().String(),
		Email: pgconv.StringPtrToPgtype(u.Email()),
		Image: pgconv.StringPtrToPgtype(u.Image()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	_, err := r.queries.UpdateUserProfile(ctx, r.db, sqlc.UpdateUserProfileParams{
		ID:        u.ID(),
		Name:      u.Name().String(),
		Image:     pgconv.StringPtrToPgtype(u.Image()),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}
