package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carepass-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestController(repo *fakeUserRepository, mailerSvc *recordingMailerService) *UserController {
	uc := NewUserUsecase(repo, &fixedDiscountResolver{discount: 10}, mailerSvc, testInternalConfig())
	return NewUserController(zap.NewNop(), uc)
}

func TestSendSubscriptionEmailHandler(t *testing.T) {
	t.Run("Missing UserID Rejected Before Composition", func(t *testing.T) {
		mailerSvc := &recordingMailerService{}
		ctrl := newTestController(&fakeUserRepository{users: map[string]*models.User{}}, mailerSvc)

		req := httptest.NewRequest("POST", "/users/send-subscription-email",
			strings.NewReader(`{"promoCode":"SAVE10"}`))
		rr := httptest.NewRecorder()
		ctrl.SendSubscriptionEmail(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, mailerSvc.sent)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		ctrl := newTestController(&fakeUserRepository{users: map[string]*models.User{}}, &recordingMailerService{})

		req := httptest.NewRequest("POST", "/users/send-subscription-email",
			strings.NewReader(`{"userId":`))
		rr := httptest.NewRecorder()
		ctrl.SendSubscriptionEmail(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown User Yields Not Found", func(t *testing.T) {
		ctrl := newTestController(&fakeUserRepository{users: map[string]*models.User{}}, &recordingMailerService{})

		req := httptest.NewRequest("POST", "/users/send-subscription-email",
			strings.NewReader(`{"userId":"missing"}`))
		rr := httptest.NewRecorder()
		ctrl.SendSubscriptionEmail(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Success", func(t *testing.T) {
		repo := &fakeUserRepository{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Ada", Email: "ada@example.com"},
		}}
		mailerSvc := &recordingMailerService{}
		ctrl := newTestController(repo, mailerSvc)

		req := httptest.NewRequest("POST", "/users/send-subscription-email",
			strings.NewReader(`{"userId":"user-1","promoCode":"SAVE10"}`))
		rr := httptest.NewRecorder()
		ctrl.SendSubscriptionEmail(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"107.89"`)
		assert.Len(t, mailerSvc.sent, 1)
	})
}
