package admins

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	RegisterAdmin(ctx context.Context, request *requests.RegisterAdmin) (*responses.Admin, error)
	LoginAdmin(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetAdminByID(ctx context.Context, adminID string) (*responses.Admin, error)
}

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, adminID string) (*models.Admin, error)
}
