package sections

import (
	"context"
	"errors"
	"recognition-service/internal/app/contracts/mocks"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSectionUsecase_FindCatalog(t *testing.T) {
	sectionID := uuid.New()
	sections := []models.Section{{ID: sectionID, Name: "Your qualification", OrderNumber: 1}}
	tasks := []models.StageTask{{ID: uuid.New(), SectionID: sectionID, Name: "Upload evidence", OrderNumber: 1}}
	questionTypes := []models.QuestionType{{ID: uuid.New(), Name: "fileUpload"}}

	t.Run("Cache Hit", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		sectionRepository := new(mocks.MockSectionRepository)

		cached, err := json.Marshal(models.SectionCatalog{Sections: sections, Tasks: tasks})
		require.NoError(t, err)
		redisRepository.On("Get", mock.Anything, constvars.RedisKeySectionCatalog).Return(string(cached), nil)

		usecase := NewSectionUsecase(sectionRepository, redisRepository, time.Minute, zap.NewNop())
		catalog, err := usecase.FindCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sectionID, catalog.Sections[0].ID)
		sectionRepository.AssertNotCalled(t, "FindAllSections", mock.Anything)
	})

	t.Run("Cache Miss Loads And Caches", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		sectionRepository := new(mocks.MockSectionRepository)

		redisRepository.On("Get", mock.Anything, constvars.RedisKeySectionCatalog).Return("", nil)
		sectionRepository.On("FindAllSections", mock.Anything).Return(sections, nil)
		sectionRepository.On("FindAllStageTasks", mock.Anything).Return(tasks, nil)
		sectionRepository.On("FindAllQuestionTypes", mock.Anything).Return(questionTypes, nil)
		redisRepository.On("Set", mock.Anything, constvars.RedisKeySectionCatalog, mock.AnythingOfType("*models.SectionCatalog"), time.Minute).Return(nil)

		usecase := NewSectionUsecase(sectionRepository, redisRepository, time.Minute, zap.NewNop())
		catalog, err := usecase.FindCatalog(context.Background())
		require.NoError(t, err)
		assert.Len(t, catalog.Tasks, 1)
		_, ok := catalog.FindQuestionType(questionTypes[0].ID)
		assert.True(t, ok)
		redisRepository.AssertExpectations(t)
	})

	t.Run("Redis Unavailable Falls Back To Repository", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		sectionRepository := new(mocks.MockSectionRepository)

		redisRepository.On("Get", mock.Anything, constvars.RedisKeySectionCatalog).Return("", errors.New("connection refused"))
		sectionRepository.On("FindAllSections", mock.Anything).Return(sections, nil)
		sectionRepository.On("FindAllStageTasks", mock.Anything).Return(tasks, nil)
		sectionRepository.On("FindAllQuestionTypes", mock.Anything).Return(questionTypes, nil)
		redisRepository.On("Set", mock.Anything, constvars.RedisKeySectionCatalog, mock.Anything, time.Minute).Return(errors.New("connection refused"))

		usecase := NewSectionUsecase(sectionRepository, redisRepository, time.Minute, zap.NewNop())
		catalog, err := usecase.FindCatalog(context.Background())
		require.NoError(t, err)
		assert.Len(t, catalog.Sections, 1)
	})

	t.Run("Repository Failure", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		sectionRepository := new(mocks.MockSectionRepository)

		redisRepository.On("Get", mock.Anything, constvars.RedisKeySectionCatalog).Return("", nil)
		sectionRepository.On("FindAllSections", mock.Anything).Return(nil, errors.New("db down"))

		usecase := NewSectionUsecase(sectionRepository, redisRepository, time.Minute, zap.NewNop())
		_, err := usecase.FindCatalog(context.Background())
		assert.Error(t, err)
	})
}

func TestSectionUsecase_FindAll(t *testing.T) {
	firstID, secondID := uuid.New(), uuid.New()
	catalog := models.SectionCatalog{
		Sections: []models.Section{
			{ID: secondID, Name: "Check your answers", OrderNumber: 2},
			{ID: firstID, Name: "About you", OrderNumber: 1},
		},
		Tasks: []models.StageTask{{ID: uuid.New(), SectionID: firstID, Name: "Personal details", OrderNumber: 1}},
	}
	cached, err := json.Marshal(catalog)
	require.NoError(t, err)

	redisRepository := new(mocks.MockRedisRepository)
	redisRepository.On("Get", mock.Anything, constvars.RedisKeySectionCatalog).Return(string(cached), nil)

	usecase := NewSectionUsecase(new(mocks.MockSectionRepository), redisRepository, time.Minute, zap.NewNop())
	response, err := usecase.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, response, 2)
	assert.Equal(t, "About you", response[0].SectionName)
	assert.Equal(t, constvars.TaskStatusNotStarted, response[0].Tasks[0].Status)
	assert.Empty(t, response[1].Tasks)
}
