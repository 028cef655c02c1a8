package controllers

import (
	"context"
	"net/http"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ApplicationController struct {
	Log                *zap.Logger
	ApplicationUsecase contracts.ApplicationUsecase
	InternalConfig     *config.InternalConfig
}

func NewApplicationController(logger *zap.Logger, applicationUsecase contracts.ApplicationUsecase, internalConfig *config.InternalConfig) *ApplicationController {
	return &ApplicationController{
		Log:                logger,
		ApplicationUsecase: applicationUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *ApplicationController) FindTaskSections(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ApplicationController.FindTaskSections called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	applicationID, err := utils.ParseUUIDParam(r, constvars.URLParamApplicationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.ApplicationUsecase.FindTaskSections(ctx, applicationID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "ApplicationController.FindTaskSections", err)
		return
	}

	ctrl.Log.Info("ApplicationController.FindTaskSections succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetApplicationTasksSuccessMessage, result)
}

func (ctrl *ApplicationController) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ApplicationController.UpdateTaskStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	applicationID, err := utils.ParseUUIDParam(r, constvars.URLParamApplicationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	taskID, err := utils.ParseUUIDParam(r, constvars.URLParamTaskID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateTaskStatus)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("ApplicationController.UpdateTaskStatus invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.ApplicationUsecase.UpdateTaskStatus(ctx, applicationID, taskID, request.Status)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "ApplicationController.UpdateTaskStatus", err)
		return
	}

	ctrl.Log.Info("ApplicationController.UpdateTaskStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID.String()),
		zap.String(constvars.LoggingTaskStatusKey, string(request.Status)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTaskStatusSuccessMessage, result)
}

func (ctrl *ApplicationController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ApplicationController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	applicationID, err := utils.ParseUUIDParam(r, constvars.URLParamApplicationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.ApplicationUsecase.Submit(ctx, applicationID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "ApplicationController.Submit", err)
		return
	}

	ctrl.Log.Info("ApplicationController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitApplicationSuccessMessage, result)
}
