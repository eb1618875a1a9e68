package waitlist

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/exceptions"
	"carepass-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type WaitlistController struct {
	Log             *zap.Logger
	WaitlistUsecase WaitlistUsecase
}

func NewWaitlistController(logger *zap.Logger, waitlistUsecase WaitlistUsecase) *WaitlistController {
	return &WaitlistController{
		Log:             logger,
		WaitlistUsecase: waitlistUsecase,
	}
}

func (ctrl *WaitlistController) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	request := new(requests.JoinWaitlist)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeJoinWaitlistRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.WaitlistUsecase.JoinWaitlist(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.JoinWaitlistSuccessMessage, result)
}

func (ctrl *WaitlistController) GetWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.WaitlistUsecase.GetWaitlist(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResourceSuccessMessage, result)
}
