package waitlist

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type WaitlistUsecase interface {
	JoinWaitlist(ctx context.Context, request *requests.JoinWaitlist) (*responses.User, error)
	GetWaitlist(ctx context.Context) ([]responses.User, error)
}

type WaitlistRepository interface {
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error)
	FindAll(ctx context.Context) ([]models.WaitlistEntry, error)
}
