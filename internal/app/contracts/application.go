package contracts

import (
	"context"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/responses"
	"time"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	FindByID(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
	FindEditable(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
	FindTaskSections(ctx context.Context, applicationID uuid.UUID) ([]responses.TaskSectionDto, error)
	UpdateTaskStatus(ctx context.Context, applicationID, taskID uuid.UUID, status constvars.TaskStatus) (*responses.TaskStatusDto, error)
	Submit(ctx context.Context, applicationID uuid.UUID) (*responses.ApplicationSubmitted, error)
}

type ApplicationRepository interface {
	FindByID(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
	FindTasks(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationTask, error)
	UpsertTaskStatus(ctx context.Context, task *models.ApplicationTask) error
	MarkSubmitted(ctx context.Context, applicationID uuid.UUID, reference string, submittedAt time.Time, upn string) (bool, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
