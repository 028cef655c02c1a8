package sections

import (
	"context"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sectionUsecase struct {
	SectionRepository contracts.SectionRepository
	RedisRepository   contracts.RedisRepository
	CacheTTL          time.Duration
	Log               *zap.Logger
}

func NewSectionUsecase(
	sectionRepository contracts.SectionRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.SectionUsecase {
	return &sectionUsecase{
		SectionRepository: sectionRepository,
		RedisRepository:   redisRepository,
		CacheTTL:          cacheTTL,
		Log:               logger,
	}
}

// FindAll lists the catalog sections with every task NotStarted.
func (uc *sectionUsecase) FindAll(ctx context.Context) ([]responses.TaskSectionDto, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sectionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	catalog, err := uc.FindCatalog(ctx)
	if err != nil {
		return nil, err
	}

	response := models.BuildTaskSections(catalog.Sections, catalog.Tasks, nil)

	uc.Log.Info("sectionUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSectionCountKey, len(response)),
	)
	return response, nil
}

func (uc *sectionUsecase) FindCatalog(ctx context.Context) (*models.SectionCatalog, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sectionUsecase.FindCatalog called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeySectionCatalog)
	if err != nil {
		uc.Log.Warn("sectionUsecase.FindCatalog error retrieving catalog from Redis, falling back to repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if cached != "" {
		var catalog models.SectionCatalog
		err = json.Unmarshal([]byte(cached), &catalog)
		if err == nil {
			uc.Log.Info("sectionUsecase.FindCatalog data found in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return &catalog, nil
		}
		uc.Log.Warn("sectionUsecase.FindCatalog error unmarshaling Redis data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	sections, err := uc.SectionRepository.FindAllSections(ctx)
	if err != nil {
		uc.Log.Error("sectionUsecase.FindCatalog error fetching sections from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	tasks, err := uc.SectionRepository.FindAllStageTasks(ctx)
	if err != nil {
		uc.Log.Error("sectionUsecase.FindCatalog error fetching stage tasks from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	questionTypes, err := uc.SectionRepository.FindAllQuestionTypes(ctx)
	if err != nil {
		uc.Log.Error("sectionUsecase.FindCatalog error fetching question types from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	catalog := &models.SectionCatalog{Sections: sections, Tasks: tasks, QuestionTypes: questionTypes}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeySectionCatalog, catalog, uc.CacheTTL)
	if err != nil {
		uc.Log.Warn("sectionUsecase.FindCatalog error caching catalog in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("sectionUsecase.FindCatalog succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSectionCountKey, len(sections)),
		zap.Int(constvars.LoggingTaskCountKey, len(tasks)),
	)
	return catalog, nil
}

func (uc *sectionUsecase) InvalidateCatalog(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeySectionCatalog)
	if err != nil {
		uc.Log.Error("sectionUsecase.InvalidateCatalog error deleting catalog from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
