package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/qualifications"

	"github.com/go-chi/chi/v5"
)

func attachQualificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, qualificationController *qualifications.QualificationController) {
	router.Get("/provider/{providerID}", qualificationController.GetQualificationsByProviderID)
	router.With(middlewares.Authenticate).Post("/", qualificationController.CreateQualification)
	router.With(middlewares.Authenticate).Put("/{qualificationID}", qualificationController.UpdateQualification)
	router.With(middlewares.Authenticate).Delete("/{qualificationID}", qualificationController.DeleteQualification)
}
