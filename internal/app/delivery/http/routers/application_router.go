package routers

import (
	"recognition-service/internal/app/delivery/http/controllers"
	"recognition-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachApplicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, submissionLimiter *middlewares.SubmissionLimiter, applicationController *controllers.ApplicationController) {
	router.Get("/tasks", applicationController.FindTaskSections)
	router.Put("/tasks/{taskId}/status", applicationController.UpdateTaskStatus)
	router.With(middlewares.SubmissionLimiter(submissionLimiter)).Post("/submit", applicationController.Submit)
}
