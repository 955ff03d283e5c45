//go:build unit || e2e

package builder

import (
	"time"

	"rentalhub/internal/domain/user"
	reqdto "rentalhub/internal/handler/dto/request"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email *string
	Image *string
}

func NewUserBuilder() *UserBuilder {
	email := "test@example.com"
	return &UserBuilder{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: &email,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain(now time.Time) (*user.User, error) {
	return user.NewUser(u.ID, u.Name, u.Email, u.Image, now)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var email, image pgtype.Text
	if u.Email != nil {
		email = pgtype.Text{String: *u.Email, Valid: true}
	}
	if u.Image != nil {
		image = pgtype.Text{String: *u.Image, Valid: true}
	}

	return sqlc.Users{
		ID:        u.ID,
		Name:      u.Name,
		Email:     email,
		Image:     image,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *UserBuilder) BuildDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = &email
	return u
}

func (u *UserBuilder) WithoutEmail() *UserBuilder {
	u.Email = nil
	return u
}

func (u *UserBuilder) WithImage(image string) *UserBuilder {
	u.Image = &image
	return u
}
