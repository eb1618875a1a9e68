package users

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.User, error)
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetUserByID(ctx context.Context, userID string) (*responses.User, error)
	SendSubscriptionEmail(ctx context.Context, request *requests.SendSubscriptionEmail) (*responses.SendSubscriptionEmail, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userEntity *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
