package responses

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ObjectKey   string `json:"objectKey"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type AnswerSaved struct {
	QuestionID uuid.UUID `json:"questionId"`
	TaskID     uuid.UUID `json:"taskId"`
	SavedAt    time.Time `json:"savedAt"`
}

type ApplicationSubmitted struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	Reference     string    `json:"reference"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
