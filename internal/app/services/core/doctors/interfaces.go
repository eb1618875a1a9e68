package doctors

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Doctor, error)
	LoginDoctor(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	GetDoctors(ctx context.Context) ([]responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, updateData map[string]interface{}) error
}
