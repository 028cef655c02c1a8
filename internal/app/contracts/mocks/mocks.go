// Package mocks holds testify mocks for the contracts interfaces.
package mocks

import (
	"context"
	"io"
	"mime/multipart"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/questions"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectKey string, reader io.Reader, size int64, contentType, fileName string) error {
	args := m.Called(ctx, bucketName, objectKey, reader, size, contentType, fileName)
	return args.Error(0)
}

func (m *MockStorage) StatObject(ctx context.Context, bucketName, objectKey string) (*contracts.StoredObject, error) {
	args := m.Called(ctx, bucketName, objectKey)
	object, _ := args.Get(0).(*contracts.StoredObject)
	return object, args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Publish(ctx context.Context, payload *requests.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockSectionRepository struct {
	mock.Mock
}

func (m *MockSectionRepository) FindAllSections(ctx context.Context) ([]models.Section, error) {
	args := m.Called(ctx)
	sections, _ := args.Get(0).([]models.Section)
	return sections, args.Error(1)
}

func (m *MockSectionRepository) FindAllStageTasks(ctx context.Context) ([]models.StageTask, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]models.StageTask)
	return tasks, args.Error(1)
}

func (m *MockSectionRepository) FindAllQuestionTypes(ctx context.Context) ([]models.QuestionType, error) {
	args := m.Called(ctx)
	questionTypes, _ := args.Get(0).([]models.QuestionType)
	return questionTypes, args.Error(1)
}

type MockSectionUsecase struct {
	mock.Mock
}

func (m *MockSectionUsecase) FindAll(ctx context.Context) ([]responses.TaskSectionDto, error) {
	args := m.Called(ctx)
	sections, _ := args.Get(0).([]responses.TaskSectionDto)
	return sections, args.Error(1)
}

func (m *MockSectionUsecase) FindCatalog(ctx context.Context) (*models.SectionCatalog, error) {
	args := m.Called(ctx)
	catalog, _ := args.Get(0).(*models.SectionCatalog)
	return catalog, args.Error(1)
}

func (m *MockSectionUsecase) InvalidateCatalog(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, applicationID)
	application, _ := args.Get(0).(*models.Application)
	return application, args.Error(1)
}

func (m *MockApplicationRepository) FindTasks(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationTask, error) {
	args := m.Called(ctx, applicationID)
	tasks, _ := args.Get(0).([]models.ApplicationTask)
	return tasks, args.Error(1)
}

func (m *MockApplicationRepository) UpsertTaskStatus(ctx context.Context, task *models.ApplicationTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockApplicationRepository) MarkSubmitted(ctx context.Context, applicationID uuid.UUID, reference string, submittedAt time.Time, upn string) (bool, error) {
	args := m.Called(ctx, applicationID, reference, submittedAt, upn)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockApplicationUsecase struct {
	mock.Mock
}

func (m *MockApplicationUsecase) FindByID(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, applicationID)
	application, _ := args.Get(0).(*models.Application)
	return application, args.Error(1)
}

func (m *MockApplicationUsecase) FindEditable(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, applicationID)
	application, _ := args.Get(0).(*models.Application)
	return application, args.Error(1)
}

func (m *MockApplicationUsecase) FindTaskSections(ctx context.Context, applicationID uuid.UUID) ([]responses.TaskSectionDto, error) {
	args := m.Called(ctx, applicationID)
	sections, _ := args.Get(0).([]responses.TaskSectionDto)
	return sections, args.Error(1)
}

func (m *MockApplicationUsecase) UpdateTaskStatus(ctx context.Context, applicationID, taskID uuid.UUID, status constvars.TaskStatus) (*responses.TaskStatusDto, error) {
	args := m.Called(ctx, applicationID, taskID, status)
	task, _ := args.Get(0).(*responses.TaskStatusDto)
	return task, args.Error(1)
}

func (m *MockApplicationUsecase) Submit(ctx context.Context, applicationID uuid.UUID) (*responses.ApplicationSubmitted, error) {
	args := m.Called(ctx, applicationID)
	submitted, _ := args.Get(0).(*responses.ApplicationSubmitted)
	return submitted, args.Error(1)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, questionID string) (*models.Question, error) {
	args := m.Called(ctx, questionID)
	question, _ := args.Get(0).(*models.Question)
	return question, args.Error(1)
}

type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) FindByApplicationAndQuestion(ctx context.Context, applicationID, questionID string) (*models.Answer, error) {
	args := m.Called(ctx, applicationID, questionID)
	answer, _ := args.Get(0).(*models.Answer)
	return answer, args.Error(1)
}

func (m *MockAnswerRepository) Upsert(ctx context.Context, answer *models.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

type MockQuestionUsecase struct {
	mock.Mock
}

func (m *MockQuestionUsecase) FindContent(ctx context.Context, applicationID, questionID uuid.UUID) (*questions.QuestionContent, error) {
	args := m.Called(ctx, applicationID, questionID)
	content, _ := args.Get(0).(*questions.QuestionContent)
	return content, args.Error(1)
}

func (m *MockQuestionUsecase) SaveAnswer(ctx context.Context, applicationID, questionID uuid.UUID, request *requests.AnswerSubmission) (*responses.AnswerSaved, error) {
	args := m.Called(ctx, applicationID, questionID, request)
	saved, _ := args.Get(0).(*responses.AnswerSaved)
	return saved, args.Error(1)
}

type MockAttachmentUsecase struct {
	mock.Mock
}

func (m *MockAttachmentUsecase) Upload(ctx context.Context, applicationID, questionID uuid.UUID, fieldName string, files []*multipart.FileHeader) ([]responses.Attachment, error) {
	args := m.Called(ctx, applicationID, questionID, fieldName, files)
	attachments, _ := args.Get(0).([]responses.Attachment)
	return attachments, args.Error(1)
}
