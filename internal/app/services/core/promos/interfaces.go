package promos

import (
	"context"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type PromoUsecase interface {
	DiscountResolver
	CreatePromoCode(ctx context.Context, request *requests.CreatePromoCode) (*responses.PromoCode, error)
	GetPromoCodes(ctx context.Context) ([]responses.PromoCode, error)
	DeletePromoCode(ctx context.Context, code string) error
}

// DiscountResolver computes the effective discount percentage for a promo
// code string. The result is 0 for an empty, unknown, inactive, or expired
// code; it never returns an error, so an unresolvable code can never fail the
// surrounding request.
type DiscountResolver interface {
	ResolveDiscount(ctx context.Context, code string, now time.Time) float64
}

type PromoRepository interface {
	CreatePromoCode(ctx context.Context, promo *models.PromoCode) (string, error)
	FindByCode(ctx context.Context, code string) (*models.PromoCode, error)
	FindActiveByCode(ctx context.Context, code string, now time.Time) (*models.PromoCode, error)
	FindAll(ctx context.Context) ([]models.PromoCode, error)
	DeleteByCode(ctx context.Context, code string) error
}
