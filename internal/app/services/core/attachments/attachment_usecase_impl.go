package attachments

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/forms"
	"recognition-service/internal/pkg/questions"
	"recognition-service/internal/pkg/utils"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type attachmentUsecase struct {
	QuestionRepository contracts.QuestionRepository
	ApplicationUsecase contracts.ApplicationUsecase
	Storage            contracts.Storage
	AttachmentConfig   config.Attachment
	NewObjectID        func() string
	Log                *zap.Logger
}

func NewAttachmentUsecase(
	questionRepository contracts.QuestionRepository,
	applicationUsecase contracts.ApplicationUsecase,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AttachmentUsecase {
	return &attachmentUsecase{
		QuestionRepository: questionRepository,
		ApplicationUsecase: applicationUsecase,
		Storage:            storage,
		AttachmentConfig:   internalConfig.Attachment,
		NewObjectID:        uuid.NewString,
		Log:                logger,
	}
}

// Upload stores the files of a question's file upload field. Files are
// checked against the attachment limits and the field's rule before any
// object is written.
func (uc *attachmentUsecase) Upload(ctx context.Context, applicationID, questionID uuid.UUID, fieldName string, files []*multipart.FileHeader) ([]responses.Attachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attachmentUsecase.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
		zap.String(constvars.LoggingQuestionIDKey, questionID.String()),
		zap.Int(constvars.LoggingAttachmentCountKey, len(files)),
	)

	_, err := uc.ApplicationUsecase.FindEditable(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	field, err := uc.findFileUpload(ctx, questionID, fieldName)
	if err != nil {
		return nil, err
	}

	err = uc.checkLimits(files)
	if err != nil {
		uc.Log.Info("attachmentUsecase.Upload attachments exceed limits",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	submission := forms.Submission{field.Name(): forms.FieldValue{Files: toFormFiles(files)}}
	validation := forms.ValidateQuestion(questions.QuestionContent{FormGroup: questions.NewFormGroup(field)}, submission)
	if !validation.IsValid() {
		return nil, exceptions.ErrSubmissionInvalid(nil).WithData(validation)
	}

	attachments := make([]responses.Attachment, 0, len(files))
	for _, fileHeader := range files {
		attachment, err := uc.upload(ctx, applicationID, questionID, fileHeader)
		if err != nil {
			uc.Log.Error("attachmentUsecase.Upload error uploading attachment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBucketNameKey, uc.AttachmentConfig.BucketName),
				zap.Error(err),
			)
			return nil, err
		}
		attachments = append(attachments, attachment)
	}

	uc.Log.Info("attachmentUsecase.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAttachmentCountKey, len(attachments)),
	)
	return attachments, nil
}

func (uc *attachmentUsecase) findFileUpload(ctx context.Context, questionID uuid.UUID, fieldName string) (*questions.FileUpload, error) {
	question, err := uc.QuestionRepository.FindByID(ctx, questionID.String())
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, exceptions.ErrQuestionNotFound(nil, questionID.String())
	}

	content, err := question.DecodeContent()
	if err != nil {
		return nil, exceptions.ErrInvalidQuestionContent(err, questionID.String())
	}

	field, ok := content.Field().(*questions.FileUpload)
	if !ok || (fieldName != "" && field.Name() != fieldName) {
		return nil, exceptions.ErrQuestionHasNoFileUpload(nil, questionID.String())
	}
	return field, nil
}

func (uc *attachmentUsecase) checkLimits(files []*multipart.FileHeader) error {
	var total int64
	for _, fileHeader := range files {
		if fileHeader.Size > uc.AttachmentConfig.MaxFileSizeBytes {
			return exceptions.ErrAttachmentTooLarge(nil, fileHeader.Filename)
		}
		total += fileHeader.Size
	}
	if total > uc.AttachmentConfig.MaxTotalSizeBytes {
		return exceptions.ErrAttachmentsTooLarge(fmt.Errorf("total size %d bytes", total))
	}
	return nil
}

func (uc *attachmentUsecase) upload(ctx context.Context, applicationID, questionID uuid.UUID, fileHeader *multipart.FileHeader) (responses.Attachment, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return responses.Attachment{}, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	fileName := filepath.Base(fileHeader.Filename)
	extension := strings.ToLower(filepath.Ext(fileName))
	objectKey := fmt.Sprintf(constvars.AttachmentObjectKeyFormat, applicationID, questionID, uc.NewObjectID(), extension)
	contentType := fileHeader.Header.Get(constvars.HeaderContentType)

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err = utils.LogOperation(uc.Log, "attachment_upload", requestID, func() error {
		return uc.Storage.PutObject(ctx, uc.AttachmentConfig.BucketName, objectKey, file, fileHeader.Size, contentType, fileName)
	})
	if err != nil {
		return responses.Attachment{}, err
	}

	return responses.Attachment{
		ObjectKey:   objectKey,
		FileName:    fileName,
		Size:        fileHeader.Size,
		ContentType: contentType,
	}, nil
}

func toFormFiles(files []*multipart.FileHeader) []forms.File {
	result := make([]forms.File, 0, len(files))
	for _, fileHeader := range files {
		result = append(result, forms.File{
			FileName:    fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		})
	}
	return result
}
