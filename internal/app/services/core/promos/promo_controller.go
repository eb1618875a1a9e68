package promos

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/exceptions"
	"carepass-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PromoController struct {
	Log          *zap.Logger
	PromoUsecase PromoUsecase
}

func NewPromoController(logger *zap.Logger, promoUsecase PromoUsecase) *PromoController {
	return &PromoController{
		Log:          logger,
		PromoUsecase: promoUsecase,
	}
}

func (ctrl *PromoController) CreatePromoCode(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePromoCode)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreatePromoCodeRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PromoUsecase.CreatePromoCode(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateResourceSuccessMessage, result)
}

func (ctrl *PromoController) GetPromoCodes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PromoUsecase.GetPromoCodes(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResourceSuccessMessage, result)
}

func (ctrl *PromoController) DeletePromoCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "code"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.PromoUsecase.DeletePromoCode(ctx, code)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteResourceSuccessMessage, nil)
}
