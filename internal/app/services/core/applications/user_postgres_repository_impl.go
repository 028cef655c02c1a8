package applications

import (
	"context"
	"database/sql"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/queries"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	return &userPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID.String()),
	)

	var user models.User
	err := r.DB.QueryRowContext(ctx, queries.GetUserByID, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.CreatedDate,
		&user.ModifiedDate,
		&user.CreatedByUpn,
		&user.ModifiedByUpn,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("userPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &user, nil
}
