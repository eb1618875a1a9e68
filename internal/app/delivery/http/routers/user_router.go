package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Post("/register", userController.RegisterUser)
	router.Post("/login", userController.LoginUser)
	router.With(middlewares.Authenticate).Post("/send-subscription-email", userController.SendSubscriptionEmail)
	router.With(middlewares.Authenticate).Get("/{userID}", userController.GetUserByID)
}
