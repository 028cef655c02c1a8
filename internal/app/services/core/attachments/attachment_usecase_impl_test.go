package attachments

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts/mocks"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/exceptions"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testApplicationID = uuid.MustParse("9b7c6d5e-1111-4000-8000-000000000001")
	testQuestionID    = uuid.MustParse("9b7c6d5e-2222-4000-8000-000000000002")
)

const evidenceQuestion = `{
	"heading": "Upload your certificate",
	"formGroup": {
		"fileUpload": {
			"name": "certificate",
			"label": {"text": "Certificate"},
			"multiple": true,
			"validation": {
				"required": {"message": "Upload your certificate"},
				"acceptedTypes": {"values": [".pdf", "image/*"], "message": "The certificate must be a PDF or an image"}
			}
		}
	}
}`

type uploadedFile struct {
	name        string
	contentType string
	content     []byte
}

func buildFileHeaders(t *testing.T, files ...uploadedFile) []*multipart.FileHeader {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="attachments"; filename="`+file.name+`"`)
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["attachments"]
}

type attachmentUsecaseFixture struct {
	questionRepository *mocks.MockQuestionRepository
	applicationUsecase *mocks.MockApplicationUsecase
	storage            *mocks.MockStorage
	usecase            *attachmentUsecase
}

func newAttachmentUsecaseFixture(questionContent string) *attachmentUsecaseFixture {
	f := &attachmentUsecaseFixture{
		questionRepository: new(mocks.MockQuestionRepository),
		applicationUsecase: new(mocks.MockApplicationUsecase),
		storage:            new(mocks.MockStorage),
	}
	f.usecase = &attachmentUsecase{
		QuestionRepository: f.questionRepository,
		ApplicationUsecase: f.applicationUsecase,
		Storage:            f.storage,
		AttachmentConfig: config.Attachment{
			BucketName:        "attachments",
			MaxFileSizeBytes:  constvars.MaxFileSizeBytes,
			MaxTotalSizeBytes: constvars.MaxTotalSizeBytes,
		},
		NewObjectID: func() string { return "object-1" },
		Log:         zap.NewNop(),
	}
	f.applicationUsecase.On("FindEditable", mock.Anything, testApplicationID).Return(&models.Application{ID: testApplicationID}, nil)
	f.questionRepository.On("FindByID", mock.Anything, testQuestionID.String()).Return(&models.Question{
		ID:      testQuestionID.String(),
		Content: questionContent,
	}, nil)
	return f
}

func statusCodeOf(t *testing.T, err error) int {
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestAttachmentUsecase_Upload(t *testing.T) {
	t.Run("Uploads Accepted File", func(t *testing.T) {
		f := newAttachmentUsecaseFixture(evidenceQuestion)
		expectedKey := "applications/" + testApplicationID.String() + "/questions/" + testQuestionID.String() + "/object-1.pdf"
		f.storage.On("PutObject", mock.Anything, "attachments", expectedKey, mock.MatchedBy(func(reader io.Reader) bool {
			content, err := io.ReadAll(reader)
			return err == nil && string(content) == "%PDF-1.7"
		}), int64(8), "application/pdf", "Certificate.PDF").Return(nil)

		files := buildFileHeaders(t, uploadedFile{name: "Certificate.PDF", contentType: "application/pdf", content: []byte("%PDF-1.7")})
		attachments, err := f.usecase.Upload(context.Background(), testApplicationID, testQuestionID, "certificate", files)
		require.NoError(t, err)
		require.Len(t, attachments, 1)
		assert.Equal(t, expectedKey, attachments[0].ObjectKey)
		assert.Equal(t, "Certificate.PDF", attachments[0].FileName)
		assert.Equal(t, int64(8), attachments[0].Size)
		f.storage.AssertExpectations(t)
	})

	t.Run("Rejects File Over Max Size", func(t *testing.T) {
		f := newAttachmentUsecaseFixture(evidenceQuestion)
		files := []*multipart.FileHeader{{Filename: "huge.pdf", Size: constvars.MaxFileSizeBytes + 1}}

		_, err := f.usecase.Upload(context.Background(), testApplicationID, testQuestionID, "certificate", files)
		assert.Equal(t, http.StatusRequestEntityTooLarge, statusCodeOf(t, err))
		f.storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects Total Over Max Size", func(t *testing.T) {
		f := newAttachmentUsecaseFixture(evidenceQuestion)
		files := make([]*multipart.FileHeader, 0, 5)
		for i := 0; i < 5; i++ {
			files = append(files, &multipart.FileHeader{Filename: "part.pdf", Size: constvars.MaxFileSizeBytes})
		}

		_, err := f.usecase.Upload(context.Background(), testApplicationID, testQuestionID, "certificate", files)
		assert.Equal(t, http.StatusRequestEntityTooLarge, statusCodeOf(t, err))
	})

	t.Run("Rejects Unaccepted Type With Validation Response", func(t *testing.T) {
		f := newAttachmentUsecaseFixture(evidenceQuestion)
		files := buildFileHeaders(t, uploadedFile{name: "notes.docx", contentType: "application/msword", content: []byte("doc")})

		_, err := f.usecase.Upload(context.Background(), testApplicationID, testQuestionID, "certificate", files)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
		validation, ok := customErr.Data.(responses.ValidationResponse)
		require.True(t, ok)
		require.Len(t, validation.Errors, 1)
		assert.Equal(t, "The certificate must be a PDF or an image", validation.Errors[0].Message)
	})

	t.Run("Question Without File Upload", func(t *testing.T) {
		f := newAttachmentUsecaseFixture(`{"formGroup":{"textarea":{"name":"summary","label":{"text":"Summary"}}}}`)
		files := buildFileHeaders(t, uploadedFile{name: "a.pdf", contentType: "application/pdf", content: []byte("a")})

		_, err := f.usecase.Upload(context.Background(), testApplicationID, testQuestionID, "", files)
		assert.Equal(t, http.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("Storage Failure", func(t *testing.T) {
		f := newAttachmentUsecaseFixture(evidenceQuestion)
		f.storage.On("PutObject", mock.Anything, "attachments", mock.Anything, mock.Anything, int64(1), "image/png", "scan.png").
			Return(exceptions.ErrMinioCreateObject(errors.New("connection reset"), "attachments"))

		files := buildFileHeaders(t, uploadedFile{name: "scan.png", contentType: "image/png", content: []byte("x")})
		_, err := f.usecase.Upload(context.Background(), testApplicationID, testQuestionID, "certificate", files)
		assert.Equal(t, http.StatusInternalServerError, statusCodeOf(t, err))
	})
}
