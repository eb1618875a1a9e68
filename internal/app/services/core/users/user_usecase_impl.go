package users

import (
	"context"
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/app/models"
	"carepass-service/internal/app/services/core/promos"
	"carepass-service/internal/app/services/shared/mailer"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"
	"carepass-service/internal/pkg/utils"
)

type userUsecase struct {
	UserRepository   UserRepository
	DiscountResolver promos.DiscountResolver
	MailerService    mailer.MailerService
	InternalConfig   *config.InternalConfig
}

func NewUserUsecase(
	userMongoRepository UserRepository,
	discountResolver promos.DiscountResolver,
	mailerService mailer.MailerService,
	internalConfig *config.InternalConfig,
) UserUsecase {
	return &userUsecase{
		UserRepository:   userMongoRepository,
		DiscountResolver: discountResolver,
		MailerService:    mailerService,
		InternalConfig:   internalConfig,
	}
}

func (uc *userUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.User, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
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
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.User{
		ID:        userID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (uc *userUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(user.ID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// SendSubscriptionEmail loads the user, resolves the promo discount, prices
// the membership, composes the confirmation, and dispatches it through the
// configured transport. No retry on dispatch failure; retrying risks a
// duplicate delivery.
func (uc *userUsecase) SendSubscriptionEmail(ctx context.Context, request *requests.SendSubscriptionEmail) (*responses.SendSubscriptionEmail, error) {
	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	discount := uc.DiscountResolver.ResolveDiscount(ctx, request.PromoCode, time.Now())
	finalPrice := promos.FinalPrice(discount)

	message, err := mailer.ComposeSubscriptionEmail(
		user.Name,
		user.Email,
		finalPrice,
		uc.InternalConfig.Mailer.SenderEmail,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.MailerService.SendEmail(ctx, message); err != nil {
		return nil, err
	}

	return &responses.SendSubscriptionEmail{
		Recipient:  user.Email,
		FinalPrice: finalPrice,
	}, nil
}
