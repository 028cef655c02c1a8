package routers

import (
	"fmt"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/delivery/http/controllers"
	"recognition-service/internal/app/delivery/http/middlewares"
	"recognition-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Section     *controllers.SectionController
	Application *controllers.ApplicationController
	Question    *controllers.QuestionController
	Attachment  *controllers.AttachmentController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	submissionLimiter *middlewares.SubmissionLimiter,
	handlers Controllers,
) {
	allowedOrigins := internalConfig.Cors.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           internalConfig.Cors.MaxAge,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.LimitRequestBody)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/sections", func(r chi.Router) {
				attachSectionRoutes(r, handlers.Section)
			})

			r.Route("/applications/{applicationId}", func(r chi.Router) {
				r.Use(middlewares.CheckApplicationId)
				attachApplicationRoutes(r, middlewares, submissionLimiter, handlers.Application)
				attachQuestionRoutes(r, middlewares, submissionLimiter, handlers.Question, handlers.Attachment)
			})
		})
	})
}
