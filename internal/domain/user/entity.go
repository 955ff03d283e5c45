package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the profile of an identity issued by the external identity service.
// The id is the token subject, never generated here.
type User struct {
	id        uuid.UUID
	name      Name
	email     *Email
	image     *string
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(id uuid.UUID, name string, email *string, image *string, now time.Time) (*User, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	var e *Email
	if email != nil && strings.TrimSpace(*email) != "" {
		parsed, err := NewEmail(*email)
		if err != nil {
			return nil, err
		}
		e = &parsed
	}

	return &User{
		id:        id,
		name:      n,
		email:     e,
		image:     normalizeImage(image),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email *string, image *string, createdAt, updatedAt time.Time) *User {
	var e *Email
	if email != nil {
		e = &Email{value: *email}
	}
	return &User{
		id:        id,
		name:      Name{value: name},
		email:     e,
		image:     image,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateProfile applies a partial update. Nil fields are left untouched.
func (u *User) UpdateProfile(name *string, image *string, now time.Time) error {
	if name != nil {
		n, err := NewName(*name)
		if err != nil {
			return err
		}
		u.name = n
	}
	if image != nil {
		u.image = normalizeImage(image)
	}
	u.updatedAt = now
	return nil
}

func normalizeImage(image *string) *string {
	if image == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*image)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Image() *string       { return u.image }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) Email() *string {
	if u.email == nil {
		return nil
	}
	v := u.email.Value()
	return &v
}
