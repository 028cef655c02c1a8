package routers

import (
	"recognition-service/internal/app/delivery/http/controllers"
	"recognition-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachQuestionRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	submissionLimiter *middlewares.SubmissionLimiter,
	questionController *controllers.QuestionController,
	attachmentController *controllers.AttachmentController,
) {
	router.Route("/questions/{questionId}", func(r chi.Router) {
		r.Get("/", questionController.FindContent)
		r.With(middlewares.SubmissionLimiter(submissionLimiter)).Post("/answers", questionController.SaveAnswer)
		r.With(middlewares.SubmissionLimiter(submissionLimiter)).Post("/attachments", attachmentController.Upload)
	})
}
