package routers

import (
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/admins"
	"carepass-service/internal/app/services/core/doctors"
	"carepass-service/internal/app/services/core/images"
	"carepass-service/internal/app/services/core/payments"
	"carepass-service/internal/app/services/core/promos"
	"carepass-service/internal/app/services/core/providers"
	"carepass-service/internal/app/services/core/qualifications"
	"carepass-service/internal/app/services/core/users"
	"carepass-service/internal/app/services/core/waitlist"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	userController *users.UserController,
	waitlistController *waitlist.WaitlistController,
	doctorController *doctors.DoctorController,
	adminController *admins.AdminController,
	providerController *providers.ProviderController,
	qualificationController *qualifications.QualificationController,
	promoController *promos.PromoController,
	paymentController *payments.PaymentController,
	imageController *images.ImageController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	attachImageRoutes(router, middlewares, imageController)

	router.Route("/users", func(r chi.Router) {
		attachUserRoutes(r, middlewares, userController)
	})

	router.Route("/waitlist", func(r chi.Router) {
		attachWaitlistRoutes(r, middlewares, waitlistController)
	})

	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, middlewares, doctorController)
	})

	router.Route("/admins", func(r chi.Router) {
		attachAdminRoutes(r, middlewares, adminController)
	})

	router.Route("/providers", func(r chi.Router) {
		attachProviderRoutes(r, middlewares, providerController)
	})

	router.Route("/qualifications", func(r chi.Router) {
		attachQualificationRoutes(r, middlewares, qualificationController)
	})

	router.Route("/promos", func(r chi.Router) {
		attachPromoRoutes(r, middlewares, promoController)
	})

	router.Route("/payments", func(r chi.Router) {
		attachPaymentRoutes(r, middlewares, paymentController)
	})
}
