package promos

import (
	"context"
	"fmt"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/app/services/shared/redis"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const promoCacheTTL = time.Minute

type promoUsecase struct {
	Log             *zap.Logger
	PromoRepository PromoRepository
	RedisRepository redis.RedisRepository
}

func NewPromoUsecase(logger *zap.Logger, promoRepository PromoRepository, redisRepository redis.RedisRepository) PromoUsecase {
	return &promoUsecase{
		Log:             logger,
		PromoRepository: promoRepository,
		RedisRepository: redisRepository,
	}
}

func (uc *promoUsecase) CreatePromoCode(ctx context.Context, request *requests.CreatePromoCode) (*responses.PromoCode, error) {
	existing, err := uc.PromoRepository.FindByCode(ctx, request.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPromoCodeAlreadyExist(nil)
	}

	now := time.Now()
	promo := &models.PromoCode{
		Code:               request.Code,
		IsActive:           request.IsActive,
		ExpiryDate:         request.ExpiryDate,
		DiscountPercentage: request.DiscountPercentage,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if _, err := uc.PromoRepository.CreatePromoCode(ctx, promo); err != nil {
		return nil, err
	}

	return &responses.PromoCode{
		Code:               promo.Code,
		DiscountPercentage: promo.DiscountPercentage,
		ExpiryDate:         promo.ExpiryDate,
		IsActive:           promo.IsActive,
	}, nil
}

func (uc *promoUsecase) GetPromoCodes(ctx context.Context) ([]responses.PromoCode, error) {
	promoCodes, err := uc.PromoRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.PromoCode, 0, len(promoCodes))
	for _, promo := range promoCodes {
		result = append(result, responses.PromoCode{
			Code:               promo.Code,
			DiscountPercentage: promo.DiscountPercentage,
			ExpiryDate:         promo.ExpiryDate,
			IsActive:           promo.IsActive,
		})
	}
	return result, nil
}

func (uc *promoUsecase) DeletePromoCode(ctx context.Context, code string) error {
	if err := uc.PromoRepository.DeleteByCode(ctx, code); err != nil {
		return err
	}
	if uc.RedisRepository != nil {
		uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisPromoDiscountKeyFormat, code))
	}
	return nil
}

// ResolveDiscount degrades every failure to zero discount: an unknown,
// inactive, or expired code and a failing lookup all produce 0 rather than an
// error. A short-TTL redis cache fronts the mongo lookup; validity is still
// evaluated against now on cache hits so a cached record cannot outlive its
// expiry instant.
func (uc *promoUsecase) ResolveDiscount(ctx context.Context, code string, now time.Time) float64 {
	if code == "" {
		return 0
	}

	cacheKey := fmt.Sprintf(constvars.RedisPromoDiscountKeyFormat, code)
	if uc.RedisRepository != nil {
		if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
			var promo models.PromoCode
			if err := json.Unmarshal([]byte(cached), &promo); err == nil {
				return discountIfValid(&promo, now)
			}
		}
	}

	promo, err := uc.PromoRepository.FindActiveByCode(ctx, code, now)
	if err != nil {
		uc.Log.Debug("promo code lookup failed, using zero discount",
			zap.String("code", code),
			zap.Error(err),
		)
		return 0
	}
	if promo == nil {
		return 0
	}

	if uc.RedisRepository != nil {
		if encoded, err := json.Marshal(promo); err == nil {
			uc.RedisRepository.Set(ctx, cacheKey, string(encoded), promoCacheTTL)
		}
	}

	return discountIfValid(promo, now)
}

func discountIfValid(promo *models.PromoCode, now time.Time) float64 {
	if !promo.IsActive || promo.ExpiryDate.Before(now) {
		return 0
	}
	return promo.DiscountPercentage
}
