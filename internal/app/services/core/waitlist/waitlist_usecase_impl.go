package waitlist

import (
	"context"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"
)

type waitlistUsecase struct {
	WaitlistRepository WaitlistRepository
}

func NewWaitlistUsecase(waitlistMongoRepository WaitlistRepository) WaitlistUsecase {
	return &waitlistUsecase{
		WaitlistRepository: waitlistMongoRepository,
	}
}

func (uc *waitlistUsecase) JoinWaitlist(ctx context.Context, request *requests.JoinWaitlist) (*responses.User, error) {
	existing, err := uc.WaitlistRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrWaitlistDuplicateEmail(nil)
	}

	now := time.Now()
	entry := &models.WaitlistEntry{
		Name:  request.Name,
		Email: request.Email,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	entryID, err := uc.WaitlistRepository.CreateEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	return &responses.User{
		ID:        entryID,
		Name:      entry.Name,
		Email:     entry.Email,
		CreatedAt: entry.CreatedAt,
	}, nil
}

func (uc *waitlistUsecase) GetWaitlist(ctx context.Context) ([]responses.User, error) {
	entries, err := uc.WaitlistRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.User, 0, len(entries))
	for _, entry := range entries {
		result = append(result, responses.User{
			ID:        entry.ID,
			Name:      entry.Name,
			Email:     entry.Email,
			CreatedAt: entry.CreatedAt,
		})
	}
	return result, nil
}
