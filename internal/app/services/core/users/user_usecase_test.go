package users

import (
	"context"
	"testing"
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	f.users["generated-id"] = user
	return "generated-id", nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

type fixedDiscountResolver struct {
	discount float64
	lastCode string
}

func (f *fixedDiscountResolver) ResolveDiscount(ctx context.Context, code string, now time.Time) float64 {
	f.lastCode = code
	return f.discount
}

type recordingMailerService struct {
	sent []*requests.EmailMessage
	err  error
}

func (r *recordingMailerService) SendEmail(ctx context.Context, message *requests.EmailMessage) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, message)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT:    config.JWT{Secret: "secret", ExpTimeInHour: 1},
		Mailer: config.Mailer{Service: constvars.EmailServiceSMTP, SenderEmail: "hello@carepass.io"},
	}
}

func TestSendSubscriptionEmail(t *testing.T) {
	t.Run("Unknown User Sends Nothing", func(t *testing.T) {
		repo := &fakeUserRepository{users: map[string]*models.User{}}
		mailerSvc := &recordingMailerService{}
		uc := NewUserUsecase(repo, &fixedDiscountResolver{}, mailerSvc, testInternalConfig())

		_, err := uc.SendSubscriptionEmail(context.Background(), &requests.SendSubscriptionEmail{
			UserID:    "missing",
			PromoCode: "SAVE10",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, mailerSvc.sent, "no email may be dispatched for an unknown user")
	})

	t.Run("Discounted Price Reaches Mailer", func(t *testing.T) {
		repo := &fakeUserRepository{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Ada", Email: "ada@example.com"},
		}}
		resolver := &fixedDiscountResolver{discount: 10}
		mailerSvc := &recordingMailerService{}
		uc := NewUserUsecase(repo, resolver, mailerSvc, testInternalConfig())

		result, err := uc.SendSubscriptionEmail(context.Background(), &requests.SendSubscriptionEmail{
			UserID:    "user-1",
			PromoCode: "SAVE10",
		})
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", result.Recipient)
		assert.Equal(t, "107.89", result.FinalPrice)
		assert.Equal(t, "SAVE10", resolver.lastCode)

		require.Len(t, mailerSvc.sent, 1)
		assert.Contains(t, mailerSvc.sent[0].HTMLBody, "$107.89")
		assert.Contains(t, mailerSvc.sent[0].TextBody, "$107.89")
	})

	t.Run("No Promo Code Means Full Price", func(t *testing.T) {
		repo := &fakeUserRepository{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Ada", Email: "ada@example.com"},
		}}
		mailerSvc := &recordingMailerService{}
		uc := NewUserUsecase(repo, &fixedDiscountResolver{discount: 0}, mailerSvc, testInternalConfig())

		result, err := uc.SendSubscriptionEmail(context.Background(), &requests.SendSubscriptionEmail{
			UserID: "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "119.88", result.FinalPrice)
	})

	t.Run("Dispatch Failure Surfaces", func(t *testing.T) {
		repo := &fakeUserRepository{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Ada", Email: "ada@example.com"},
		}}
		mailerSvc := &recordingMailerService{err: exceptions.ErrMailerDispatch(assert.AnError, "smtp")}
		uc := NewUserUsecase(repo, &fixedDiscountResolver{}, mailerSvc, testInternalConfig())

		_, err := uc.SendSubscriptionEmail(context.Background(), &requests.SendSubscriptionEmail{
			UserID: "user-1",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}
