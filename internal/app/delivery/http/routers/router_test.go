package routers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts/mocks"
	"recognition-service/internal/app/delivery/http/controllers"
	"recognition-service/internal/app/delivery/http/middlewares"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/questions"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	router             *chi.Mux
	sectionUsecase     *mocks.MockSectionUsecase
	applicationUsecase *mocks.MockApplicationUsecase
	questionUsecase    *mocks.MockQuestionUsecase
	attachmentUsecase  *mocks.MockAttachmentUsecase
	applicationID      uuid.UUID
}

func newTestServer(t *testing.T, submissionBurst int) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, submissionBurst, &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
	})
}

func newTestServerWithConfig(t *testing.T, submissionBurst int, internalConfig *config.InternalConfig) *testServer {
	t.Helper()
	logger := zap.NewNop()

	server := &testServer{
		router:             chi.NewRouter(),
		sectionUsecase:     new(mocks.MockSectionUsecase),
		applicationUsecase: new(mocks.MockApplicationUsecase),
		questionUsecase:    new(mocks.MockQuestionUsecase),
		attachmentUsecase:  new(mocks.MockAttachmentUsecase),
		applicationID:      uuid.New(),
	}
	server.applicationUsecase.On("FindByID", mock.Anything, server.applicationID).
		Return(&models.Application{ID: server.applicationID}, nil)

	mw := middlewares.NewMiddlewares(logger, internalConfig, server.applicationUsecase)
	SetupRoutes(server.router, internalConfig, mw, middlewares.NewSubmissionLimiter(60, submissionBurst, time.Minute), Controllers{
		Section:     controllers.NewSectionController(logger, server.sectionUsecase, internalConfig),
		Application: controllers.NewApplicationController(logger, server.applicationUsecase, internalConfig),
		Question:    controllers.NewQuestionController(logger, server.questionUsecase, internalConfig),
		Attachment:  controllers.NewAttachmentController(logger, server.attachmentUsecase, internalConfig),
	})
	return server
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) applicationPath(suffix string) string {
	return "/api/v1/applications/" + s.applicationID.String() + suffix
}

func TestRouter_EndpointPrefix(t *testing.T) {
	testCases := []struct {
		name   string
		prefix string
	}{
		{name: "Default Config", prefix: ""},
		{name: "Prefix With Slashes", prefix: "/api/"},
		{name: "Bare Prefix", prefix: "api"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.prefix != "" {
				t.Setenv("APP_ENDPOINT_PREFIX", tc.prefix)
			}
			t.Setenv("APP_VERSION", "v1")
			internalConfig := config.NewInternalConfig()

			server := newTestServerWithConfig(t, 5, internalConfig)
			server.sectionUsecase.On("FindAll", mock.Anything).Return([]responses.TaskSectionDto{}, nil)

			rr := server.do(httptest.NewRequest(http.MethodGet, "/api/v1/sections", nil))
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRouter_Sections(t *testing.T) {
	server := newTestServer(t, 5)
	sectionID := uuid.New()
	server.sectionUsecase.On("FindAll", mock.Anything).Return([]responses.TaskSectionDto{
		responses.NewTaskSectionDto(sectionID, "About you", 1, nil),
	}, nil)

	rr := server.do(httptest.NewRequest(http.MethodGet, "/api/v1/sections", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

	var body struct {
		Success bool                       `json:"success"`
		Data    []responses.TaskSectionDto `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, sectionID, body.Data[0].SectionID)
}

func TestRouter_ApplicationTasks(t *testing.T) {
	t.Run("Known Application", func(t *testing.T) {
		server := newTestServer(t, 5)
		server.applicationUsecase.On("FindTaskSections", mock.Anything, server.applicationID).
			Return([]responses.TaskSectionDto{}, nil)

		rr := server.do(httptest.NewRequest(http.MethodGet, server.applicationPath("/tasks"), nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown Application", func(t *testing.T) {
		server := newTestServer(t, 5)
		unknownID := uuid.New()
		server.applicationUsecase.On("FindByID", mock.Anything, unknownID).
			Return(nil, exceptions.ErrApplicationNotFound(nil, unknownID.String()))

		rr := server.do(httptest.NewRequest(http.MethodGet, "/api/v1/applications/"+unknownID.String()+"/tasks", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		server.applicationUsecase.AssertNotCalled(t, "FindTaskSections", mock.Anything, unknownID)
	})

	t.Run("Malformed Application Id", func(t *testing.T) {
		server := newTestServer(t, 5)
		rr := server.do(httptest.NewRequest(http.MethodGet, "/api/v1/applications/123/tasks", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouter_UpdateTaskStatus(t *testing.T) {
	server := newTestServer(t, 5)
	taskID := uuid.New()
	server.applicationUsecase.On("UpdateTaskStatus", mock.Anything, server.applicationID, taskID, constvars.TaskStatusCompleted).
		Return(&responses.TaskStatusDto{TaskID: taskID, Status: constvars.TaskStatusCompleted}, nil)

	t.Run("Valid Status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, server.applicationPath("/tasks/"+taskID.String()+"/status"), strings.NewReader(`{"status":"Completed"}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		rr := server.do(req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, server.applicationPath("/tasks/"+taskID.String()+"/status"), strings.NewReader(`{"status":"Done"}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		rr := server.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed Task Id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, server.applicationPath("/tasks/abc/status"), strings.NewReader(`{"status":"Completed"}`))

		rr := server.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouter_Question(t *testing.T) {
	questionID := uuid.New()

	t.Run("Find Content", func(t *testing.T) {
		server := newTestServer(t, 5)
		heading := "Tell us about your organisation"
		server.questionUsecase.On("FindContent", mock.Anything, server.applicationID, questionID).
			Return(&questions.QuestionContent{Heading: &heading}, nil)

		rr := server.do(httptest.NewRequest(http.MethodGet, server.applicationPath("/questions/"+questionID.String()), nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), heading)
	})

	t.Run("Save Answer", func(t *testing.T) {
		server := newTestServer(t, 5)
		server.questionUsecase.On("SaveAnswer", mock.Anything, server.applicationID, questionID, mock.AnythingOfType("*requests.AnswerSubmission")).
			Return(&responses.AnswerSaved{QuestionID: questionID}, nil)

		body, _ := json.Marshal(requests.AnswerSubmission{Values: map[string][]string{"description": {"We build things"}}})
		rr := server.do(httptest.NewRequest(http.MethodPost, server.applicationPath("/questions/"+questionID.String()+"/answers"), bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Save Invalid Answer", func(t *testing.T) {
		server := newTestServer(t, 5)
		validation := responses.NewValidationResponse([]responses.ValidationErrorItemDto{
			{Field: "description", Message: "Enter a description"},
		})
		server.questionUsecase.On("SaveAnswer", mock.Anything, server.applicationID, questionID, mock.Anything).
			Return(nil, exceptions.ErrSubmissionInvalid(nil).WithData(validation))

		rr := server.do(httptest.NewRequest(http.MethodPost, server.applicationPath("/questions/"+questionID.String()+"/answers"), strings.NewReader(`{"values":{}}`)))
		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var response struct {
			Message string                       `json:"message"`
			Data    responses.ValidationResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, constvars.ErrClientValidationFailed, response.Message)
		require.Len(t, response.Data.Errors, 1)
		assert.Equal(t, "description", response.Data.Errors[0].Field)
	})

	t.Run("Malformed Answer Body", func(t *testing.T) {
		server := newTestServer(t, 5)
		rr := server.do(httptest.NewRequest(http.MethodPost, server.applicationPath("/questions/"+questionID.String()+"/answers"), strings.NewReader(`{`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		server.questionUsecase.AssertNotCalled(t, "SaveAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRouter_UploadAttachments(t *testing.T) {
	questionID := uuid.New()

	t.Run("Multipart Upload", func(t *testing.T) {
		server := newTestServer(t, 5)
		server.attachmentUsecase.On("Upload", mock.Anything, server.applicationID, questionID, "evidence", mock.Anything).
			Return([]responses.Attachment{{ObjectKey: "applications/x/questions/y/z.pdf", FileName: "plan.pdf", Size: 4}}, nil)

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constvars.FormFieldName, "evidence"))
		part, err := writer.CreateFormFile(constvars.FormFieldAttachments, "plan.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, server.applicationPath("/questions/"+questionID.String()+"/attachments"), body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

		rr := server.do(req)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "plan.pdf")
	})

	t.Run("Not Multipart", func(t *testing.T) {
		server := newTestServer(t, 5)
		req := httptest.NewRequest(http.MethodPost, server.applicationPath("/questions/"+questionID.String()+"/attachments"), strings.NewReader(`{}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		rr := server.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouter_Submit(t *testing.T) {
	t.Run("Submitted", func(t *testing.T) {
		server := newTestServer(t, 5)
		server.applicationUsecase.On("Submit", mock.Anything, server.applicationID).
			Return(&responses.ApplicationSubmitted{ApplicationID: server.applicationID, Reference: "RCGN-20240501-ABCDEF12"}, nil)

		rr := server.do(httptest.NewRequest(http.MethodPost, server.applicationPath("/submit"), nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "RCGN-20240501-ABCDEF12")
	})

	t.Run("Incomplete Application", func(t *testing.T) {
		server := newTestServer(t, 5)
		server.applicationUsecase.On("Submit", mock.Anything, server.applicationID).
			Return(nil, exceptions.ErrApplicationIncomplete(nil, server.applicationID.String()))

		rr := server.do(httptest.NewRequest(http.MethodPost, server.applicationPath("/submit"), nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Throttled After Burst", func(t *testing.T) {
		server := newTestServer(t, 1)
		server.applicationUsecase.On("Submit", mock.Anything, server.applicationID).
			Return(nil, exceptions.ErrApplicationAlreadySubmitted(nil, server.applicationID.String()))

		first := server.do(httptest.NewRequest(http.MethodPost, server.applicationPath("/submit"), nil))
		assert.Equal(t, http.StatusConflict, first.Code)

		second := server.do(httptest.NewRequest(http.MethodPost, server.applicationPath("/submit"), nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		server.applicationUsecase.AssertNumberOfCalls(t, "Submit", 1)
	})
}
