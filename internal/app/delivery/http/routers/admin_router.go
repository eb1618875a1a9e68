package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/admins"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admins.AdminController) {
	router.With(middlewares.Authenticate).Post("/register", adminController.RegisterAdmin)
	router.Post("/login", adminController.LoginAdmin)
	router.With(middlewares.Authenticate).Get("/{adminID}", adminController.GetAdminByID)
}
