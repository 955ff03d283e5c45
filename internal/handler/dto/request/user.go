package request

import (
	"rentalhub/internal/usecase/commands"
)

type RegisterUserRequest struct {
	Name  string  `json:"name" binding:"max=100"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Image *string `json:"image,omitempty"`
}

func (r RegisterUserRequest) ToInput() commands.RegisterUserInput {
	return commands.RegisterUserInput{
		Name:  r.Name,
		Email: r.Email,
		Image: r.Image,
	}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Image *string `json:"image"`
}

func (r UpdateProfileRequest) ToInput() commands.UpdateProfileInput {
	return commands.UpdateProfileInput{
		Name:  r.Name,
		Image: r.Image,
	}
}
