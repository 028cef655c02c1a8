package controllers

import (
	"context"
	"net/http"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type SectionController struct {
	Log            *zap.Logger
	SectionUsecase contracts.SectionUsecase
	InternalConfig *config.InternalConfig
}

func NewSectionController(logger *zap.Logger, sectionUsecase contracts.SectionUsecase, internalConfig *config.InternalConfig) *SectionController {
	return &SectionController{
		Log:            logger,
		SectionUsecase: sectionUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SectionController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SectionController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.SectionUsecase.FindAll(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "SectionController.FindAll", err)
		return
	}

	ctrl.Log.Info("SectionController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSectionCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSectionsSuccessMessage, result)
}
