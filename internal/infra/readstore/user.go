package readstore

import (
	"context"

	"rentalhub/internal/domain/user"
	"rentalhub/internal/infra"
	"rentalhub/internal/infra/repository/converter"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserView(row), nil
}

// FindDomainByID loads the aggregate for command-side updates.
func (r *UserReadStore) FindDomainByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserFromRow(row), nil
}

func (r *UserReadStore) find(ctx context.Context, id uuid.UUID) (sqlc.Users, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.Users{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     pgconv.StringPtrFromPgtype(row.Email),
		Image:     pgconv.StringPtrFromPgtype(row.Image),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
