package promos

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"carepass-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePromoRepository struct {
	promos    map[string]*models.PromoCode
	findErr   error
	findCalls int
}

func (f *fakePromoRepository) CreatePromoCode(ctx context.Context, promo *models.PromoCode) (string, error) {
	f.promos[promo.Code] = promo
	return "id-" + promo.Code, nil
}

func (f *fakePromoRepository) FindByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	return f.promos[code], nil
}

func (f *fakePromoRepository) FindActiveByCode(ctx context.Context, code string, now time.Time) (*models.PromoCode, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	promo, ok := f.promos[code]
	if !ok || !promo.IsActive || promo.ExpiryDate.Before(now) {
		return nil, nil
	}
	return promo, nil
}

func (f *fakePromoRepository) FindAll(ctx context.Context) ([]models.PromoCode, error) {
	result := make([]models.PromoCode, 0, len(f.promos))
	for _, promo := range f.promos {
		result = append(result, *promo)
	}
	return result, nil
}

func (f *fakePromoRepository) DeleteByCode(ctx context.Context, code string) error {
	delete(f.promos, code)
	return nil
}

type fakeRedisRepository struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = value.(string)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

func TestResolveDiscount(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	newUsecase := func(repo *fakePromoRepository) PromoUsecase {
		return NewPromoUsecase(zap.NewNop(), repo, newFakeRedisRepository())
	}

	t.Run("Empty Code", func(t *testing.T) {
		repo := &fakePromoRepository{promos: map[string]*models.PromoCode{}}
		uc := newUsecase(repo)

		assert.Equal(t, float64(0), uc.ResolveDiscount(context.Background(), "", now))
		assert.Zero(t, repo.findCalls, "empty code should not hit the repository")
	})

	t.Run("Unknown Code", func(t *testing.T) {
		repo := &fakePromoRepository{promos: map[string]*models.PromoCode{}}
		uc := newUsecase(repo)

		assert.Equal(t, float64(0), uc.ResolveDiscount(context.Background(), "NOPE", now))
	})

	t.Run("Inactive Code", func(t *testing.T) {
		repo := &fakePromoRepository{promos: map[string]*models.PromoCode{
			"SAVE10": {Code: "SAVE10", IsActive: false, ExpiryDate: now.Add(24 * time.Hour), DiscountPercentage: 10},
		}}
		uc := newUsecase(repo)

		assert.Equal(t, float64(0), uc.ResolveDiscount(context.Background(), "SAVE10", now))
	})

	t.Run("Expired Code", func(t *testing.T) {
		repo := &fakePromoRepository{promos: map[string]*models.PromoCode{
			"SAVE10": {Code: "SAVE10", IsActive: true, ExpiryDate: now.Add(-time.Hour), DiscountPercentage: 10},
		}}
		uc := newUsecase(repo)

		assert.Equal(t, float64(0), uc.ResolveDiscount(context.Background(), "SAVE10", now))
	})

	t.Run("Valid Code", func(t *testing.T) {
		repo := &fakePromoRepository{promos: map[string]*models.PromoCode{
			"SAVE10": {Code: "SAVE10", IsActive: true, ExpiryDate: now.Add(24 * time.Hour), DiscountPercentage: 10},
		}}
		uc := newUsecase(repo)

		assert.Equal(t, float64(10), uc.ResolveDiscount(context.Background(), "SAVE10", now))
	})

	t.Run("Lookup Failure Degrades To Zero", func(t *testing.T) {
		repo := &fakePromoRepository{
			promos:  map[string]*models.PromoCode{},
			findErr: errors.New("connection reset"),
		}
		uc := newUsecase(repo)

		assert.Equal(t, float64(0), uc.ResolveDiscount(context.Background(), "SAVE10", now))
	})

	t.Run("Cache Hit Skips Repository", func(t *testing.T) {
		repo := &fakePromoRepository{promos: map[string]*models.PromoCode{
			"SAVE10": {Code: "SAVE10", IsActive: true, ExpiryDate: now.Add(24 * time.Hour), DiscountPercentage: 10},
		}}
		uc := newUsecase(repo)

		assert.Equal(t, float64(10), uc.ResolveDiscount(context.Background(), "SAVE10", now))
		assert.Equal(t, float64(10), uc.ResolveDiscount(context.Background(), "SAVE10", now))
		assert.Equal(t, 1, repo.findCalls, "second resolve should be served from cache")
	})

	t.Run("Cached Record Still Honors Expiry", func(t *testing.T) {
		repo := &fakePromoRepository{promos: map[string]*models.PromoCode{
			"SAVE10": {Code: "SAVE10", IsActive: true, ExpiryDate: now.Add(time.Minute), DiscountPercentage: 10},
		}}
		uc := newUsecase(repo)

		assert.Equal(t, float64(10), uc.ResolveDiscount(context.Background(), "SAVE10", now))

		afterExpiry := now.Add(2 * time.Minute)
		assert.Equal(t, float64(0), uc.ResolveDiscount(context.Background(), "SAVE10", afterExpiry),
			"a cached record must not outlive its expiry instant")
	})
}
