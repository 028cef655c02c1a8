package questions

import (
	"context"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type answerMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewAnswerMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.AnswerRepository {
	return &answerMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAnswers),
		Log:        logger,
	}
}

func (repo *answerMongoRepository) FindByApplicationAndQuestion(ctx context.Context, applicationID, questionID string) (*models.Answer, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("answerMongoRepository.FindByApplicationAndQuestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID),
		zap.String(constvars.LoggingQuestionIDKey, questionID),
	)

	var answer models.Answer
	filter := bson.M{"applicationId": applicationID, "questionId": questionID}
	err := repo.Collection.FindOne(ctx, filter).Decode(&answer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	repo.Log.Info("answerMongoRepository.FindByApplicationAndQuestion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &answer, nil
}

// Upsert replaces the answer stored for the same application and question.
func (repo *answerMongoRepository) Upsert(ctx context.Context, answer *models.Answer) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("answerMongoRepository.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, answer.ApplicationID),
		zap.String(constvars.LoggingQuestionIDKey, answer.QuestionID),
	)

	filter := bson.M{"applicationId": answer.ApplicationID, "questionId": answer.QuestionID}
	_, err := repo.Collection.ReplaceOne(ctx, filter, answer, options.Replace().SetUpsert(true))
	if err != nil {
		repo.Log.Error("answerMongoRepository.Upsert error replacing answer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}

	repo.Log.Info("answerMongoRepository.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
