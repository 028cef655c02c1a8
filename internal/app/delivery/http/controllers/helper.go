package controllers

import (
	"context"
	"errors"
	"net/http"
	"recognition-service/internal/app/config"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, requestID, method string, err error) {
	log.Error(method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
