package questions

import (
	"context"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type questionMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewQuestionMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.QuestionRepository {
	return &questionMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionQuestions),
		Log:        logger,
	}
}

// FindByID returns nil without error when the question does not exist.
func (repo *questionMongoRepository) FindByID(ctx context.Context, questionID string) (*models.Question, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("questionMongoRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionIDKey, questionID),
	)

	var question models.Question
	err := repo.Collection.FindOne(ctx, bson.M{"_id": questionID}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("questionMongoRepository.FindByID error finding question",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	repo.Log.Info("questionMongoRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &question, nil
}
