package models

import (
	"recognition-service/internal/pkg/dto/responses"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
	DataMetadata
}

func (u User) ConvertIntoResponse() responses.UserDto {
	return responses.UserDto{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
