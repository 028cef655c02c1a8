package routers

import (
	"recognition-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSectionRoutes(router chi.Router, sectionController *controllers.SectionController) {
	router.Get("/", sectionController.FindAll)
}
