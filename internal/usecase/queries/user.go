package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueries interface {
	Me(ctx context.Context, principal auth.Principal) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) Me(ctx context.Context, principal auth.Principal) (*UserView, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrNotAuthorized
	}
	v, err := q.store.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, classify(err, errs.ErrUserNotFound)
	}
	return v, nil
}
