package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/promos"

	"github.com/go-chi/chi/v5"
)

func attachPromoRoutes(router chi.Router, middlewares *middlewares.Middlewares, promoController *promos.PromoController) {
	router.With(middlewares.Authenticate).Post("/", promoController.CreatePromoCode)
	router.With(middlewares.Authenticate).Get("/", promoController.GetPromoCodes)
	router.With(middlewares.Authenticate).Delete("/{code}", promoController.DeletePromoCode)
}
