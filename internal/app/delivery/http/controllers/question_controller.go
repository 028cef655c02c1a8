package controllers

import (
	"context"
	"net/http"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type QuestionController struct {
	Log             *zap.Logger
	QuestionUsecase contracts.QuestionUsecase
	InternalConfig  *config.InternalConfig
}

func NewQuestionController(logger *zap.Logger, questionUsecase contracts.QuestionUsecase, internalConfig *config.InternalConfig) *QuestionController {
	return &QuestionController{
		Log:             logger,
		QuestionUsecase: questionUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *QuestionController) FindContent(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("QuestionController.FindContent called",
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

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.QuestionUsecase.FindContent(ctx, applicationID, questionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "QuestionController.FindContent", err)
		return
	}

	ctrl.Log.Info("QuestionController.FindContent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionIDKey, questionID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionSuccessMessage, result)
}

func (ctrl *QuestionController) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("QuestionController.SaveAnswer called",
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

	request := new(requests.AnswerSubmission)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("QuestionController.SaveAnswer invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.SanitizeAnswerSubmission(request); err != nil {
		ctrl.Log.Error("QuestionController.SaveAnswer duplicate field names",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.QuestionUsecase.SaveAnswer(ctx, applicationID, questionID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "QuestionController.SaveAnswer", err)
		return
	}

	ctrl.Log.Info("QuestionController.SaveAnswer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionIDKey, questionID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveAnswerSuccessMessage, result)
}
