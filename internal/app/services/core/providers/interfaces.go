package providers

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type ProviderUsecase interface {
	CreateProvider(ctx context.Context, request *requests.CreateProvider) (*responses.Provider, error)
	GetProviderByID(ctx context.Context, providerID string) (*responses.Provider, error)
	GetProviders(ctx context.Context) ([]responses.Provider, error)
	UpdateProvider(ctx context.Context, providerID string, request *requests.UpdateProvider) (*responses.Provider, error)
	DeleteProvider(ctx context.Context, providerID string) error
}

type ProviderRepository interface {
	CreateProvider(ctx context.Context, provider *models.Provider) (string, error)
	FindByID(ctx context.Context, providerID string) (*models.Provider, error)
	FindAll(ctx context.Context) ([]models.Provider, error)
	UpdateProvider(ctx context.Context, providerID string, updateData map[string]interface{}) error
	DeleteByID(ctx context.Context, providerID string) error
}
