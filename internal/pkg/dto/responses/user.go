package responses

import "github.com/google/uuid"

type UserDto struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role,omitempty"`
}
