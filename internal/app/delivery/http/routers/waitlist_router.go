package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/waitlist"

	"github.com/go-chi/chi/v5"
)

func attachWaitlistRoutes(router chi.Router, middlewares *middlewares.Middlewares, waitlistController *waitlist.WaitlistController) {
	router.Post("/", waitlistController.JoinWaitlist)
	router.With(middlewares.Authenticate).Get("/", waitlistController.GetWaitlist)
}
