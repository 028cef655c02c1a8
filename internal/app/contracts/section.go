package contracts

import (
	"context"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/dto/responses"
)

type SectionUsecase interface {
	FindAll(ctx context.Context) ([]responses.TaskSectionDto, error)
	FindCatalog(ctx context.Context) (*models.SectionCatalog, error)
	InvalidateCatalog(ctx context.Context) error
}

type SectionRepository interface {
	FindAllSections(ctx context.Context) ([]models.Section, error)
	FindAllStageTasks(ctx context.Context) ([]models.StageTask, error)
	FindAllQuestionTypes(ctx context.Context) ([]models.QuestionType, error)
}
