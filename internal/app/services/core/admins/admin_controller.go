package admins

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

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterAdmin)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeRegisterAdminRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AdminUsecase.RegisterAdmin(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, result)
}

func (ctrl *AdminController) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AdminUsecase.LoginAdmin(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AdminController) GetAdminByID(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")
	if adminID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "adminID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AdminUsecase.GetAdminByID(ctx, adminID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResourceSuccessMessage, result)
}
