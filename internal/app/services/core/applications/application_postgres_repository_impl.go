package applications

import (
	"context"
	"database/sql"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/queries"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type applicationPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewApplicationPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ApplicationRepository {
	return &applicationPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

// FindByID returns nil without error when the application does not exist.
func (r *applicationPostgresRepository) FindByID(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("applicationPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)

	var application models.Application
	var submittedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, queries.GetApplicationByID, applicationID).Scan(
		&application.ID,
		&application.UserID,
		&application.Reference,
		&submittedAt,
		&application.CreatedDate,
		&application.ModifiedDate,
		&application.CreatedByUpn,
		&application.ModifiedByUpn,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		r.Log.Error("applicationPostgresRepository.FindByID error querying application",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if submittedAt.Valid {
		application.SubmittedAt = &submittedAt.Time
	}

	r.Log.Info("applicationPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &application, nil
}

func (r *applicationPostgresRepository) FindTasks(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationTask, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("applicationPostgresRepository.FindTasks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetApplicationTasksByApplicationID, applicationID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var tasks []models.ApplicationTask
	for rows.Next() {
		var model models.ApplicationTask
		err := rows.Scan(
			&model.ApplicationID,
			&model.StageTaskID,
			&model.Status,
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

	r.Log.Info("applicationPostgresRepository.FindTasks succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTaskCountKey, len(tasks)),
	)
	return tasks, nil
}

func (r *applicationPostgresRepository) UpsertTaskStatus(ctx context.Context, task *models.ApplicationTask) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("applicationPostgresRepository.UpsertTaskStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, task.ApplicationID.String()),
		zap.String(constvars.LoggingTaskIDKey, task.StageTaskID.String()),
		zap.String(constvars.LoggingTaskStatusKey, task.Status.String()),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpsertApplicationTaskStatus,
		task.ApplicationID,
		task.StageTaskID,
		task.Status.String(),
		task.ModifiedDate,
		task.ModifiedByUpn,
	)
	if err != nil {
		r.Log.Error("applicationPostgresRepository.UpsertTaskStatus error upserting task status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	r.Log.Info("applicationPostgresRepository.UpsertTaskStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// MarkSubmitted reports false when the application was already submitted.
func (r *applicationPostgresRepository) MarkSubmitted(ctx context.Context, applicationID uuid.UUID, reference string, submittedAt time.Time, upn string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("applicationPostgresRepository.MarkSubmitted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)

	result, err := r.DB.ExecContext(ctx, queries.MarkApplicationSubmitted, applicationID, reference, submittedAt, upn)
	if err != nil {
		r.Log.Error("applicationPostgresRepository.MarkSubmitted error updating application",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}

	r.Log.Info("applicationPostgresRepository.MarkSubmitted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, affected > 0),
	)
	return affected > 0, nil
}
