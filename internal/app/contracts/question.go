package contracts

import (
	"context"
	"mime/multipart"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/questions"

	"github.com/google/uuid"
)

type QuestionUsecase interface {
	FindContent(ctx context.Context, applicationID, questionID uuid.UUID) (*questions.QuestionContent, error)
	SaveAnswer(ctx context.Context, applicationID, questionID uuid.UUID, request *requests.AnswerSubmission) (*responses.AnswerSaved, error)
}

type QuestionRepository interface {
	FindByID(ctx context.Context, questionID string) (*models.Question, error)
}

type AnswerRepository interface {
	FindByApplicationAndQuestion(ctx context.Context, applicationID, questionID string) (*models.Answer, error)
	Upsert(ctx context.Context, answer *models.Answer) error
}

type AttachmentUsecase interface {
	Upload(ctx context.Context, applicationID, questionID uuid.UUID, fieldName string, files []*multipart.FileHeader) ([]responses.Attachment, error)
}
