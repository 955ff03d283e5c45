package auth

import (
	"errors"

	"github.com/google/uuid"
)

var ErrAnonymous = errors.New("principal is not authenticated")

// Principal is the verified caller identity, resolved once at the transport edge.
type Principal struct {
	UserID uuid.UUID
}

func NewPrincipal(userID uuid.UUID) (Principal, error) {
	if userID == uuid.Nil {
		return Principal{}, ErrAnonymous
	}
	return Principal{UserID: userID}, nil
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != uuid.Nil
}
