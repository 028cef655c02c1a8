package controllers

import (
	"context"
	"net/http"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// multipartMemoryBytes is the part of a multipart body kept in memory; the
// rest spills to temporary files.
const multipartMemoryBytes = 32 << 20

type AttachmentController struct {
	Log               *zap.Logger
	AttachmentUsecase contracts.AttachmentUsecase
	InternalConfig    *config.InternalConfig
}

func NewAttachmentController(logger *zap.Logger, attachmentUsecase contracts.AttachmentUsecase, internalConfig *config.InternalConfig) *AttachmentController {
	return &AttachmentController{
		Log:               logger,
		AttachmentUsecase: attachmentUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *AttachmentController) Upload(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("AttachmentController.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	applicationID, err := utils.ParseUUIDParam(r, constvars.URLParamApplicationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	questionID, err := utils.ParseUUIDParam(r, constvars.URLParamQuestionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		ctrl.Log.Error("AttachmentController.Upload error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File[constvars.FormFieldAttachments]
	if len(files) == 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(http.ErrMissingFile))
		return
	}
	fieldName := r.FormValue(constvars.FormFieldName)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.AttachmentUsecase.Upload(ctx, applicationID, questionID, fieldName, files)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "AttachmentController.Upload", err)
		return
	}

	ctrl.Log.Info("AttachmentController.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionIDKey, questionID.String()),
		zap.Int(constvars.LoggingAttachmentCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, result)
}
