package sections

import (
	"context"
	"database/sql"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type sectionPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewSectionPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.SectionRepository {
	return &sectionPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *sectionPostgresRepository) FindAllSections(ctx context.Context) ([]models.Section, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sectionPostgresRepository.FindAllSections called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetAllSections)
	if err != nil {
		r.Log.Error("sectionPostgresRepository.FindAllSections error querying sections",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var model models.Section
		err := rows.Scan(
			&model.ID,
			&model.Name,
			&model.OrderNumber,
			&model.CreatedDate,
			&model.ModifiedDate,
			&model.CreatedByUpn,
			&model.ModifiedByUpn,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		sections = append(sections, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("sectionPostgresRepository.FindAllSections succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSectionCountKey, len(sections)),
	)
	return sections, nil
}

func (r *sectionPostgresRepository) FindAllStageTasks(ctx context.Context) ([]models.StageTask, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sectionPostgresRepository.FindAllStageTasks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetAllStageTasks)
	if err != nil {
		r.Log.Error("sectionPostgresRepository.FindAllStageTasks error querying stage tasks",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var tasks []models.StageTask
	for rows.Next() {
		var model models.StageTask
		err := rows.Scan(
			&model.ID,
			&model.SectionID,
			&model.Name,
			&model.OrderNumber,
			&model.CreatedDate,
			&model.ModifiedDate,
			&model.CreatedByUpn,
			&model.ModifiedByUpn,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		tasks = append(tasks, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("sectionPostgresRepository.FindAllStageTasks succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTaskCountKey, len(tasks)),
	)
	return tasks, nil
}

func (r *sectionPostgresRepository) FindAllQuestionTypes(ctx context.Context) ([]models.QuestionType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sectionPostgresRepository.FindAllQuestionTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetAllQuestionTypes)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var questionTypes []models.QuestionType
	for rows.Next() {
		var model models.QuestionType
		err := rows.Scan(
			&model.ID,
			&model.Name,
			&model.CreatedDate,
			&model.ModifiedDate,
			&model.CreatedByUpn,
			&model.ModifiedByUpn,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		questionTypes = append(questionTypes, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("sectionPostgresRepository.FindAllQuestionTypes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return questionTypes, nil
}
