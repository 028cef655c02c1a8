package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Reference   string     `json:"reference"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	DataMetadata
}

func (a Application) IsSubmitted() bool {
	return a.SubmittedAt != nil
}
