package qualifications

import (
	"context"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/app/services/core/providers"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"
)

type qualificationUsecase struct {
	QualificationRepository QualificationRepository
	ProviderRepository      providers.ProviderRepository
}

func NewQualificationUsecase(
	qualificationMongoRepository QualificationRepository,
	providerMongoRepository providers.ProviderRepository,
) QualificationUsecase {
	return &qualificationUsecase{
		QualificationRepository: qualificationMongoRepository,
		ProviderRepository:      providerMongoRepository,
	}
}

func (uc *qualificationUsecase) CreateQualification(ctx context.Context, request *requests.CreateQualification) (*responses.Qualification, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotExist(nil)
	}

	now := time.Now()
	qualification := &models.Qualification{
		ProviderID:  request.ProviderID,
		Degree:      request.Degree,
		Institution: request.Institution,
		Year:        request.Year,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	qualificationID, err := uc.QualificationRepository.CreateQualification(ctx, qualification)
	if err != nil {
		return nil, err
	}
	return buildQualificationResponse(qualificationID, qualification), nil
}

func (uc *qualificationUsecase) GetQualificationsByProviderID(ctx context.Context, providerID string) ([]responses.Qualification, error) {
	qualificationList, err := uc.QualificationRepository.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Qualification, 0, len(qualificationList))
	for _, qualification := range qualificationList {
		result = append(result, *buildQualificationResponse(qualification.ID, &qualification))
	}
	return result, nil
}

func (uc *qualificationUsecase) UpdateQualification(ctx context.Context, qualificationID string, request *requests.UpdateQualification) (*responses.Qualification, error) {
	qualification, err := uc.QualificationRepository.FindByID(ctx, qualificationID)
	if err != nil {
		return nil, err
	}
	if qualification == nil {
		return nil, exceptions.ErrQualificationNotExist(nil)
	}

	updateData := map[string]interface{}{"updatedAt": time.Now()}
	if request.Degree != "" {
		updateData["degree"] = request.Degree
		qualification.Degree = request.Degree
	}
	if request.Institution != "" {
		updateData["institution"] = request.Institution
		qualification.Institution = request.Institution
	}
	if request.Year != 0 {
		updateData["year"] = request.Year
		qualification.Year = request.Year
	}

	if err := uc.QualificationRepository.UpdateQualification(ctx, qualificationID, updateData); err != nil {
		return nil, err
	}
	return buildQualificationResponse(qualification.ID, qualification), nil
}

func (uc *qualificationUsecase) DeleteQualification(ctx context.Context, qualificationID string) error {
	qualification, err := uc.QualificationRepository.FindByID(ctx, qualificationID)
	if err != nil {
		return err
	}
	if qualification == nil {
		return exceptions.ErrQualificationNotExist(nil)
	}
	return uc.QualificationRepository.DeleteByID(ctx, qualificationID)
}

func buildQualificationResponse(qualificationID string, qualification *models.Qualification) *responses.Qualification {
	return &responses.Qualification{
		ID:          qualificationID,
		ProviderID:  qualification.ProviderID,
		Degree:      qualification.Degree,
		Institution: qualification.Institution,
		Year:        qualification.Year,
	}
}
