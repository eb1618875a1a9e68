package qualifications

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type QualificationUsecase interface {
	CreateQualification(ctx context.Context, request *requests.CreateQualification) (*responses.Qualification, error)
	GetQualificationsByProviderID(ctx context.Context, providerID string) ([]responses.Qualification, error)
	UpdateQualification(ctx context.Context, qualificationID string, request *requests.UpdateQualification) (*responses.Qualification, error)
	DeleteQualification(ctx context.Context, qualificationID string) error
}

type QualificationRepository interface {
	CreateQualification(ctx context.Context, qualification *models.Qualification) (string, error)
	FindByID(ctx context.Context, qualificationID string) (*models.Qualification, error)
	FindByProviderID(ctx context.Context, providerID string) ([]models.Qualification, error)
	UpdateQualification(ctx context.Context, qualificationID string, updateData map[string]interface{}) error
	DeleteByID(ctx context.Context, qualificationID string) error
}
