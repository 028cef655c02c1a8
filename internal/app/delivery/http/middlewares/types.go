package middlewares

import (
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	ApplicationUsecase contracts.ApplicationUsecase
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, applicationUsecase contracts.ApplicationUsecase) *Middlewares {
	return &Middlewares{
		Log:                logger,
		InternalConfig:     internalConfig,
		ApplicationUsecase: applicationUsecase,
	}
}
