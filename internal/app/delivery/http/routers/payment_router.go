package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.With(middlewares.Authenticate).Post("/", paymentController.CreatePayment)
	router.With(middlewares.Authenticate).Get("/user/{userID}", paymentController.GetPaymentsByUserID)
}
