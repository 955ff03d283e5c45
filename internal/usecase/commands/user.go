package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/user"
	"rentalhub/internal/pkg/clock"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/usecase/shared"
)

type RegisterUserInput struct {
	Name  string
	Email *string
	Image *string
}

type UpdateProfileInput struct {
	Name  *string
	Image *string
}

type UserCommands interface {
	Register(ctx context.Context, principal auth.Principal, in RegisterUserInput) (*user.User, error)
	UpdateProfile(ctx context.Context, principal auth.Principal, in UpdateProfileInput) (*user.User, error)
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

// Register returns the stored profile for the principal, creating it on first call.
func (uc *userUseCaseImpl) Register(ctx context.Context, principal auth.Principal, in RegisterUserInput) (*user.User, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrNotAuthorized
	}

	u, err := user.NewUser(principal.UserID, in.Name, in.Email, in.Image, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var stored *user.User
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		stored, err = tx.Users().Upsert(ctx, u)
		return err
	})
	if err != nil {
		return nil, classify(err, nil)
	}
	return stored, nil
}

func (uc *userUseCaseImpl) UpdateProfile(ctx context.Context, principal auth.Principal, in UpdateProfileInput) (*user.User, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrNotAuthorized
	}

	var updated *user.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, principal.UserID)
		if err != nil {
			return err
		}
		if err := u.UpdateProfile(in.Name, in.Image, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Users().Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, classify(err, errs.ErrUserNotFound)
	}
	return updated, nil
}
