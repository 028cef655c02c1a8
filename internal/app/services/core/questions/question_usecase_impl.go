package questions

import (
	"context"
	"fmt"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/forms"
	"recognition-service/internal/pkg/questions"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type questionUsecase struct {
	QuestionRepository contracts.QuestionRepository
	AnswerRepository   contracts.AnswerRepository
	ApplicationUsecase contracts.ApplicationUsecase
	SectionUsecase     contracts.SectionUsecase
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
	Now                func() time.Time
	Log                *zap.Logger
}

func NewQuestionUsecase(
	questionRepository contracts.QuestionRepository,
	answerRepository contracts.AnswerRepository,
	applicationUsecase contracts.ApplicationUsecase,
	sectionUsecase contracts.SectionUsecase,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionUsecase {
	return &questionUsecase{
		QuestionRepository: questionRepository,
		AnswerRepository:   answerRepository,
		ApplicationUsecase: applicationUsecase,
		SectionUsecase:     sectionUsecase,
		Storage:            storage,
		InternalConfig:     internalConfig,
		Now:                time.Now,
		Log:                logger,
	}
}

func (uc *questionUsecase) FindContent(ctx context.Context, applicationID, questionID uuid.UUID) (*questions.QuestionContent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionUsecase.FindContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
		zap.String(constvars.LoggingQuestionIDKey, questionID.String()),
	)

	_, err := uc.ApplicationUsecase.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	_, content, err := uc.findQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("questionUsecase.FindContent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &content, nil
}

// SaveAnswer validates the submission against the question's form field,
// stores it and moves the owning task to InProgress.
func (uc *questionUsecase) SaveAnswer(ctx context.Context, applicationID, questionID uuid.UUID, request *requests.AnswerSubmission) (*responses.AnswerSaved, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionUsecase.SaveAnswer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
		zap.String(constvars.LoggingQuestionIDKey, questionID.String()),
	)

	_, err := uc.ApplicationUsecase.FindEditable(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	question, content, err := uc.findQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	err = checkAttachmentKeys(applicationID, questionID, request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	attachments, err := uc.resolveAttachments(ctx, request.Attachments)
	if err != nil {
		return nil, err
	}
	request = &requests.AnswerSubmission{Values: request.Values, Attachments: attachments}

	validation := forms.ValidateQuestion(content, forms.NewSubmission(request))
	if !validation.IsValid() {
		uc.Log.Info("questionUsecase.SaveAnswer submission failed validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingErrorCountKey, len(validation.Errors)),
		)
		return nil, exceptions.ErrSubmissionInvalid(nil).WithData(validation)
	}

	taskID, err := uuid.Parse(question.TaskID)
	if err != nil {
		return nil, exceptions.ErrInvalidQuestionContent(err, questionID.String())
	}

	catalog, err := uc.SectionUsecase.FindCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := catalog.FindTask(taskID); !ok {
		return nil, exceptions.ErrTaskNotFound(nil, taskID.String())
	}
	if questionTypeID, err := uuid.Parse(question.QuestionTypeID); err == nil {
		if questionType, ok := catalog.FindQuestionType(questionTypeID); ok {
			uc.Log.Debug("questionUsecase.SaveAnswer resolved question type",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingQuestionTypeKey, questionType.Name),
			)
		}
	}

	answer, err := uc.AnswerRepository.FindByApplicationAndQuestion(ctx, applicationID.String(), questionID.String())
	if err != nil {
		return nil, err
	}
	if answer == nil {
		answer = &models.Answer{
			ApplicationID: applicationID.String(),
			QuestionID:    questionID.String(),
		}
	}
	answer.Values = request.Values
	answer.Attachments = storedAttachments(request.Attachments)

	savedAt := uc.Now().UTC()
	answer.Touch(uc.InternalConfig.App.ServiceUpn, savedAt)

	err = uc.AnswerRepository.Upsert(ctx, answer)
	if err != nil {
		return nil, err
	}

	_, err = uc.ApplicationUsecase.UpdateTaskStatus(ctx, applicationID, taskID, constvars.TaskStatusInProgress)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("questionUsecase.SaveAnswer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID.String()),
	)
	return &responses.AnswerSaved{
		QuestionID: questionID,
		TaskID:     taskID,
		SavedAt:    savedAt,
	}, nil
}

func (uc *questionUsecase) findQuestion(ctx context.Context, questionID uuid.UUID) (*models.Question, questions.QuestionContent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	question, err := uc.QuestionRepository.FindByID(ctx, questionID.String())
	if err != nil {
		return nil, questions.QuestionContent{}, err
	}
	if question == nil {
		return nil, questions.QuestionContent{}, exceptions.ErrQuestionNotFound(nil, questionID.String())
	}

	content, err := question.DecodeContent()
	if err != nil {
		uc.Log.Error("questionUsecase.findQuestion stored content is invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionIDKey, questionID.String()),
			zap.Error(err),
		)
		return nil, questions.QuestionContent{}, exceptions.ErrInvalidQuestionContent(err, questionID.String())
	}
	return question, content, nil
}

// checkAttachmentKeys makes sure every referenced object was uploaded for
// this application and question.
func checkAttachmentKeys(applicationID, questionID uuid.UUID, request *requests.AnswerSubmission) error {
	prefix := fmt.Sprintf(constvars.AttachmentObjectKeyFormat, applicationID, questionID, "", "")
	for fieldName, attachments := range request.Attachments {
		for _, attachment := range attachments {
			if !strings.HasPrefix(attachment.ObjectKey, prefix) {
				return fmt.Errorf("attachment %q of field %q was not uploaded for this question", attachment.ObjectKey, fieldName)
			}
		}
	}
	return nil
}

// resolveAttachments replaces the client's description of each referenced
// object with the metadata the object store recorded at upload.
func (uc *questionUsecase) resolveAttachments(ctx context.Context, attachments map[string][]requests.AttachmentReference) (map[string][]requests.AttachmentReference, error) {
	if len(attachments) == 0 {
		return nil, nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	bucketName := uc.InternalConfig.Attachment.BucketName

	result := make(map[string][]requests.AttachmentReference, len(attachments))
	for fieldName, references := range attachments {
		resolved := make([]requests.AttachmentReference, 0, len(references))
		for _, reference := range references {
			object, err := uc.Storage.StatObject(ctx, bucketName, reference.ObjectKey)
			if err != nil {
				uc.Log.Error("questionUsecase.resolveAttachments error reading object metadata",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingBucketNameKey, bucketName),
					zap.String(constvars.LoggingObjectKeyKey, reference.ObjectKey),
					zap.Error(err),
				)
				return nil, err
			}
			if object == nil {
				return nil, exceptions.ErrInputValidation(fmt.Errorf("attachment %q of field %q does not exist", reference.ObjectKey, fieldName))
			}
			resolved = append(resolved, requests.AttachmentReference{
				ObjectKey:   reference.ObjectKey,
				FileName:    object.FileName,
				Size:        object.Size,
				ContentType: object.ContentType,
			})
		}
		result[fieldName] = resolved
	}
	return result, nil
}

func storedAttachments(attachments map[string][]requests.AttachmentReference) map[string][]models.StoredAttachment {
	if len(attachments) == 0 {
		return nil
	}
	result := make(map[string][]models.StoredAttachment, len(attachments))
	for fieldName, references := range attachments {
		stored := make([]models.StoredAttachment, 0, len(references))
		for _, reference := range references {
			stored = append(stored, models.StoredAttachment{
				ObjectKey:   reference.ObjectKey,
				FileName:    reference.FileName,
				Size:        reference.Size,
				ContentType: reference.ContentType,
			})
		}
		result[fieldName] = stored
	}
	return result
}
