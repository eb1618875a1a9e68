package payments

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.Payment, error)
	GetPaymentsByUserID(ctx context.Context, userID string) ([]responses.Payment, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (string, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Payment, error)
}
