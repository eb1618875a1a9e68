package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Post("/register", doctorController.RegisterDoctor)
	router.Post("/login", doctorController.LoginDoctor)
	router.Get("/", doctorController.GetDoctors)
	router.Get("/{doctorID}", doctorController.GetDoctorByID)
	router.With(middlewares.Authenticate).Put("/{doctorID}", doctorController.UpdateDoctor)
}
