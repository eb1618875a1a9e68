package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/providers"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *providers.ProviderController) {
	router.Get("/", providerController.GetProviders)
	router.Get("/{providerID}", providerController.GetProviderByID)
	router.With(middlewares.Authenticate).Post("/", providerController.CreateProvider)
	router.With(middlewares.Authenticate).Put("/{providerID}", providerController.UpdateProvider)
	router.With(middlewares.Authenticate).Delete("/{providerID}", providerController.DeleteProvider)
}
