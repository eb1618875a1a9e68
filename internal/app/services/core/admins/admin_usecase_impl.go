package admins

import (
	"context"
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"
	"carepass-service/internal/pkg/utils"
)

type adminUsecase struct {
	AdminRepository AdminRepository
	InternalConfig  *config.InternalConfig
}

func NewAdminUsecase(adminMongoRepository AdminRepository, internalConfig *config.InternalConfig) AdminUsecase {
	return &adminUsecase{
		AdminRepository: adminMongoRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *adminUsecase) RegisterAdmin(ctx context.Context, request *requests.RegisterAdmin) (*responses.Admin, error) {
	existing, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	admin := &models.Admin{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	adminID, err := uc.AdminRepository.CreateAdmin(ctx, admin)
	if err != nil {
		return nil, err
	}

	return &responses.Admin{
		ID:        adminID,
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	}, nil
}

func (uc *adminUsecase) LoginAdmin(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	admin, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !utils.CheckPasswordHash(request.Password, admin.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(admin.ID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *adminUsecase) GetAdminByID(ctx context.Context, adminID string) (*responses.Admin, error) {
	admin, err := uc.AdminRepository.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.Admin{
		ID:        admin.ID,
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	}, nil
}
