package questions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/contracts/mocks"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testApplicationID = uuid.MustParse("6a1d2c3b-1111-4000-8000-000000000001")
	testQuestionID    = uuid.MustParse("6a1d2c3b-2222-4000-8000-000000000002")
	testTaskID        = uuid.MustParse("6a1d2c3b-3333-4000-8000-000000000003")
	testNow           = time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
)

const evidenceQuestion = `{
	"heading": "Upload your evidence",
	"formGroup": {
		"fileUpload": {
			"name": "evidence",
			"label": {"text": "Evidence"},
			"multiple": true,
			"validation": {
				"maxFileSize": {"value": 1048576, "message": "Each file must be smaller than 1MB"},
				"acceptedTypes": {"values": [".pdf"], "message": "Each file must be a PDF"}
			}
		}
	}
}`

const fullNameQuestion = `{
	"heading": "What is your full name?",
	"body": [{"type": "paragraph", "paragraph": {"text": "As shown on your passport."}}],
	"formGroup": {
		"textInput": {
			"name": "full-name",
			"label": {"text": "Full name"},
			"validation": {
				"required": {"message": "Enter your full name"},
				"maxLength": {"value": 10}
			}
		}
	}
}`

type questionUsecaseFixture struct {
	questionRepository *mocks.MockQuestionRepository
	answerRepository   *mocks.MockAnswerRepository
	applicationUsecase *mocks.MockApplicationUsecase
	sectionUsecase     *mocks.MockSectionUsecase
	storage            *mocks.MockStorage
	usecase            *questionUsecase
}

func newQuestionUsecaseFixture() *questionUsecaseFixture {
	f := &questionUsecaseFixture{
		questionRepository: new(mocks.MockQuestionRepository),
		answerRepository:   new(mocks.MockAnswerRepository),
		applicationUsecase: new(mocks.MockApplicationUsecase),
		sectionUsecase:     new(mocks.MockSectionUsecase),
		storage:            new(mocks.MockStorage),
	}
	f.usecase = &questionUsecase{
		QuestionRepository: f.questionRepository,
		AnswerRepository:   f.answerRepository,
		ApplicationUsecase: f.applicationUsecase,
		SectionUsecase:     f.sectionUsecase,
		Storage:            f.storage,
		InternalConfig: &config.InternalConfig{
			App:        config.App{ServiceUpn: "recognition-service"},
			Attachment: config.Attachment{BucketName: "attachments"},
		},
		Now:                func() time.Time { return testNow },
		Log:                zap.NewNop(),
	}
	return f
}

func (f *questionUsecaseFixture) withQuestion(content string) {
	f.questionRepository.On("FindByID", mock.Anything, testQuestionID.String()).Return(&models.Question{
		ID:      testQuestionID.String(),
		TaskID:  testTaskID.String(),
		Content: content,
	}, nil)
}

func customErrorOf(t *testing.T, err error) *exceptions.CustomError {
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr
}

func TestQuestionUsecase_FindContent(t *testing.T) {
	t.Run("Decodes Stored Content", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindByID", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(fullNameQuestion)

		content, err := f.usecase.FindContent(context.Background(), testApplicationID, testQuestionID)
		require.NoError(t, err)
		require.NotNil(t, content.Heading)
		assert.Equal(t, "What is your full name?", *content.Heading)
		assert.Equal(t, "full-name", content.Field().Name())
	})

	t.Run("Question Missing", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindByID", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.questionRepository.On("FindByID", mock.Anything, testQuestionID.String()).Return(nil, nil)

		_, err := f.usecase.FindContent(context.Background(), testApplicationID, testQuestionID)
		assert.Equal(t, http.StatusNotFound, customErrorOf(t, err).StatusCode)
	})

	t.Run("Stored Content Violates Block Invariants", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindByID", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(`{"body":[{"type":"heading","paragraph":{"text":"wrong payload"}}]}`)

		_, err := f.usecase.FindContent(context.Background(), testApplicationID, testQuestionID)
		assert.Equal(t, http.StatusInternalServerError, customErrorOf(t, err).StatusCode)
	})
}

func TestQuestionUsecase_SaveAnswer(t *testing.T) {
	catalog := &models.SectionCatalog{
		Tasks: []models.StageTask{{ID: testTaskID, Name: "Personal details"}},
	}

	t.Run("Stores Answer And Marks Task In Progress", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(fullNameQuestion)
		f.sectionUsecase.On("FindCatalog", mock.Anything).Return(catalog, nil)
		f.answerRepository.On("FindByApplicationAndQuestion", mock.Anything, testApplicationID.String(), testQuestionID.String()).Return(nil, nil)
		f.answerRepository.On("Upsert", mock.Anything, mock.MatchedBy(func(answer *models.Answer) bool {
			return answer.Values["full-name"][0] == "Alex" &&
				answer.CreatedDate.Equal(testNow) &&
				answer.ModifiedByUpn == "recognition-service"
		})).Return(nil)
		f.applicationUsecase.On("UpdateTaskStatus", mock.Anything, testApplicationID, testTaskID, constvars.TaskStatusInProgress).
			Return(&responses.TaskStatusDto{TaskID: testTaskID, Status: constvars.TaskStatusInProgress}, nil)

		saved, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{
			Values: map[string][]string{"full-name": {"Alex"}},
		})
		require.NoError(t, err)
		assert.Equal(t, testTaskID, saved.TaskID)
		assert.Equal(t, testNow, saved.SavedAt)
		f.answerRepository.AssertExpectations(t)
		f.applicationUsecase.AssertExpectations(t)
	})

	t.Run("Keeps Creation Stamp Of Existing Answer", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		createdDate := testNow.Add(-48 * time.Hour)
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(fullNameQuestion)
		f.sectionUsecase.On("FindCatalog", mock.Anything).Return(catalog, nil)
		f.answerRepository.On("FindByApplicationAndQuestion", mock.Anything, testApplicationID.String(), testQuestionID.String()).Return(&models.Answer{
			ApplicationID: testApplicationID.String(),
			QuestionID:    testQuestionID.String(),
			DataMetadata:  models.DataMetadata{CreatedDate: createdDate, CreatedByUpn: "importer"},
		}, nil)
		f.answerRepository.On("Upsert", mock.Anything, mock.MatchedBy(func(answer *models.Answer) bool {
			return answer.CreatedDate.Equal(createdDate) && answer.CreatedByUpn == "importer" && answer.ModifiedDate.Equal(testNow)
		})).Return(nil)
		f.applicationUsecase.On("UpdateTaskStatus", mock.Anything, testApplicationID, testTaskID, constvars.TaskStatusInProgress).
			Return(&responses.TaskStatusDto{}, nil)

		_, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{
			Values: map[string][]string{"full-name": {"Alex"}},
		})
		require.NoError(t, err)
		f.answerRepository.AssertExpectations(t)
	})

	t.Run("Validation Failure Returns Validation Response", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(fullNameQuestion)

		_, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{
			Values: map[string][]string{"full-name": {"   "}},
		})
		customErr := customErrorOf(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)

		validation, ok := customErr.Data.(responses.ValidationResponse)
		require.True(t, ok)
		require.Len(t, validation.Errors, 1)
		assert.Equal(t, "full-name", validation.Errors[0].Field)
		assert.Equal(t, "Enter your full name", validation.Errors[0].Message)
		f.answerRepository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Attachments From Another Question", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(fullNameQuestion)

		_, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{
			Values: map[string][]string{"full-name": {"Alex"}},
			Attachments: map[string][]requests.AttachmentReference{
				"evidence": {{ObjectKey: "applications/other/questions/other/file.pdf", FileName: "file.pdf"}},
			},
		})
		assert.Equal(t, http.StatusBadRequest, customErrorOf(t, err).StatusCode)
	})

	t.Run("Stores Attachment Metadata From Object Store", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		objectKey := "applications/" + testApplicationID.String() + "/questions/" + testQuestionID.String() + "/object-1.pdf"
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(evidenceQuestion)
		f.storage.On("StatObject", mock.Anything, "attachments", objectKey).Return(&contracts.StoredObject{
			Key:         objectKey,
			FileName:    "Certificate.pdf",
			Size:        2048,
			ContentType: "application/pdf",
		}, nil)
		f.sectionUsecase.On("FindCatalog", mock.Anything).Return(catalog, nil)
		f.answerRepository.On("FindByApplicationAndQuestion", mock.Anything, testApplicationID.String(), testQuestionID.String()).Return(nil, nil)
		f.answerRepository.On("Upsert", mock.Anything, mock.MatchedBy(func(answer *models.Answer) bool {
			stored := answer.Attachments["evidence"]
			return len(stored) == 1 &&
				stored[0].FileName == "Certificate.pdf" &&
				stored[0].Size == 2048 &&
				stored[0].ContentType == "application/pdf"
		})).Return(nil)
		f.applicationUsecase.On("UpdateTaskStatus", mock.Anything, testApplicationID, testTaskID, constvars.TaskStatusInProgress).
			Return(&responses.TaskStatusDto{}, nil)

		_, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{
			Attachments: map[string][]requests.AttachmentReference{
				"evidence": {{ObjectKey: objectKey, FileName: "renamed.pdf", Size: 1, ContentType: "text/plain"}},
			},
		})
		require.NoError(t, err)
		f.answerRepository.AssertExpectations(t)
	})

	t.Run("Claimed Size And Type Do Not Override Stored Object", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(evidenceQuestion)

		references := make([]requests.AttachmentReference, 0, 5)
		for i := 0; i < 5; i++ {
			objectKey := fmt.Sprintf("applications/%s/questions/%s/object-%d.exe", testApplicationID, testQuestionID, i)
			f.storage.On("StatObject", mock.Anything, "attachments", objectKey).Return(&contracts.StoredObject{
				Key:         objectKey,
				FileName:    fmt.Sprintf("setup-%d.exe", i),
				Size:        5 * 1024 * 1024,
				ContentType: "application/x-msdownload",
			}, nil)
			references = append(references, requests.AttachmentReference{
				ObjectKey:   objectKey,
				FileName:    "report.pdf",
				Size:        1,
				ContentType: "application/pdf",
			})
		}

		_, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{
			Attachments: map[string][]requests.AttachmentReference{"evidence": references},
		})
		customErr := customErrorOf(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
		validation, ok := customErr.Data.(responses.ValidationResponse)
		require.True(t, ok)
		require.NotEmpty(t, validation.Errors)
		assert.Equal(t, "evidence", validation.Errors[0].Field)
		f.answerRepository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		f.storage.AssertNumberOfCalls(t, "StatObject", 5)
	})

	t.Run("Rejects Attachment Missing From Object Store", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		objectKey := "applications/" + testApplicationID.String() + "/questions/" + testQuestionID.String() + "/gone.pdf"
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
		f.withQuestion(evidenceQuestion)
		f.storage.On("StatObject", mock.Anything, "attachments", objectKey).Return(nil, nil)

		_, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{
			Attachments: map[string][]requests.AttachmentReference{
				"evidence": {{ObjectKey: objectKey, FileName: "gone.pdf", Size: 1}},
			},
		})
		assert.Equal(t, http.StatusBadRequest, customErrorOf(t, err).StatusCode)
		f.answerRepository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Submitted Application", func(t *testing.T) {
		f := newQuestionUsecaseFixture()
		f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).
			Return(nil, exceptions.ErrApplicationAlreadySubmitted(nil, testApplicationID.String()))

		_, err := f.usecase.SaveAnswer(context.Background(), testApplicationID, testQuestionID, &requests.AnswerSubmission{})
		assert.Equal(t, http.StatusConflict, customErrorOf(t, err).StatusCode)
		f.questionRepository.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
