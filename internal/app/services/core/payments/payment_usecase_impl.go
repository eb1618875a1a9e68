package payments

import (
	"context"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/app/services/core/promos"
	"carepass-service/internal/app/services/core/users"
	"carepass-service/internal/app/services/shared/events"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	Log               *zap.Logger
	PaymentRepository PaymentRepository
	UserRepository    users.UserRepository
	DiscountResolver  promos.DiscountResolver
	EventPublisher    events.PaymentEventPublisher
}

func NewPaymentUsecase(
	logger *zap.Logger,
	paymentMongoRepository PaymentRepository,
	userMongoRepository users.UserRepository,
	discountResolver promos.DiscountResolver,
	eventPublisher events.PaymentEventPublisher,
) PaymentUsecase {
	return &paymentUsecase{
		Log:               logger,
		PaymentRepository: paymentMongoRepository,
		UserRepository:    userMongoRepository,
		DiscountResolver:  discountResolver,
		EventPublisher:    eventPublisher,
	}
}

// CreatePayment prices the membership with the promo discount applied and
// records the payment under a fresh reference ID. The recorded event is
// published on a best effort basis; a broker outage must not fail a payment
// that is already persisted.
func (uc *paymentUsecase) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.Payment, error) {
	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	now := time.Now()
	discount := uc.DiscountResolver.ResolveDiscount(ctx, request.PromoCode, now)
	amount := promos.FinalPrice(discount)

	payment := &models.Payment{
		ReferenceID:        uuid.NewString(),
		UserID:             request.UserID,
		PromoCode:          request.PromoCode,
		DiscountPercentage: discount,
		Amount:             amount,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if _, err := uc.PaymentRepository.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	event := &events.PaymentRecordedEvent{
		ReferenceID:        payment.ReferenceID,
		UserID:             payment.UserID,
		PromoCode:          payment.PromoCode,
		DiscountPercentage: payment.DiscountPercentage,
		Amount:             payment.Amount,
		RecordedAt:         now,
	}
	if err := uc.EventPublisher.PublishPaymentRecorded(ctx, event); err != nil {
		uc.Log.Error("failed to publish payment recorded event",
			zap.String("referenceId", payment.ReferenceID),
			zap.Error(err),
		)
	}

	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) GetPaymentsByUserID(ctx context.Context, userID string) ([]responses.Payment, error) {
	paymentList, err := uc.PaymentRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Payment, 0, len(paymentList))
	for _, payment := range paymentList {
		result = append(result, *buildPaymentResponse(&payment))
	}
	return result, nil
}

func buildPaymentResponse(payment *models.Payment) *responses.Payment {
	return &responses.Payment{
		ReferenceID:        payment.ReferenceID,
		UserID:             payment.UserID,
		PromoCode:          payment.PromoCode,
		DiscountPercentage: payment.DiscountPercentage,
		Amount:             payment.Amount,
		CreatedAt:          payment.CreatedAt,
	}
}
