package middlewares

import (
	"context"
	"net/http"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// CheckApplicationId rejects requests whose applicationId is not a UUID or
// does not exist, and stores the application in the request context.
func (m *Middlewares) CheckApplicationId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applicationID, err := utils.ParseUUIDParam(r, constvars.URLParamApplicationID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		application, err := m.ApplicationUsecase.FindByID(r.Context(), applicationID)
		if err != nil {
			m.Log.Info("Middlewares.CheckApplicationId application rejected",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
				zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_APPLICATION_KEY, application)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
