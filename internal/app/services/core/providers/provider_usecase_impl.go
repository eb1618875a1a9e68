package providers

import (
	"context"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"
)

type providerUsecase struct {
	ProviderRepository ProviderRepository
}

func NewProviderUsecase(providerMongoRepository ProviderRepository) ProviderUsecase {
	return &providerUsecase{
		ProviderRepository: providerMongoRepository,
	}
}

func (uc *providerUsecase) CreateProvider(ctx context.Context, request *requests.CreateProvider) (*responses.Provider, error) {
	now := time.Now()
	provider := &models.Provider{
		Name:      request.Name,
		Specialty: request.Specialty,
		Address:   request.Address,
		Phone:     request.Phone,
		Website:   request.Website,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	providerID, err := uc.ProviderRepository.CreateProvider(ctx, provider)
	if err != nil {
		return nil, err
	}
	return buildProviderResponse(providerID, provider), nil
}

func (uc *providerUsecase) GetProviderByID(ctx context.Context, providerID string) (*responses.Provider, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotExist(nil)
	}
	return buildProviderResponse(provider.ID, provider), nil
}

func (uc *providerUsecase) GetProviders(ctx context.Context) ([]responses.Provider, error) {
	providerList, err := uc.ProviderRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Provider, 0, len(providerList))
	for _, provider := range providerList {
		result = append(result, *buildProviderResponse(provider.ID, &provider))
	}
	return result, nil
}

func (uc *providerUsecase) UpdateProvider(ctx context.Context, providerID string, request *requests.UpdateProvider) (*responses.Provider, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotExist(nil)
	}

	updateData := map[string]interface{}{"updatedAt": time.Now()}
	if request.Name != "" {
		updateData["name"] = request.Name
		provider.Name = request.Name
	}
	if request.Specialty != "" {
		updateData["specialty"] = request.Specialty
		provider.Specialty = request.Specialty
	}
	if request.Address != "" {
		updateData["address"] = request.Address
		provider.Address = request.Address
	}
	if request.Phone != "" {
		updateData["phone"] = request.Phone
		provider.Phone = request.Phone
	}
	if request.Website != "" {
		updateData["website"] = request.Website
		provider.Website = request.Website
	}

	if err := uc.ProviderRepository.UpdateProvider(ctx, providerID, updateData); err != nil {
		return nil, err
	}
	return buildProviderResponse(provider.ID, provider), nil
}

func (uc *providerUsecase) DeleteProvider(ctx context.Context, providerID string) error {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return err
	}
	if provider == nil {
		return exceptions.ErrProviderNotExist(nil)
	}
	return uc.ProviderRepository.DeleteByID(ctx, providerID)
}

func buildProviderResponse(providerID string, provider *models.Provider) *responses.Provider {
	return &responses.Provider{
		ID:        providerID,
		Name:      provider.Name,
		Specialty: provider.Specialty,
		Address:   provider.Address,
		Phone:     provider.Phone,
		Website:   provider.Website,
	}
}
