package qualifications

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

type QualificationController struct {
	Log                  *zap.Logger
	QualificationUsecase QualificationUsecase
}

func NewQualificationController(logger *zap.Logger, qualificationUsecase QualificationUsecase) *QualificationController {
	return &QualificationController{
		Log:                  logger,
		QualificationUsecase: qualificationUsecase,
	}
}

func (ctrl *QualificationController) CreateQualification(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateQualification)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.QualificationUsecase.CreateQualification(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateResourceSuccessMessage, result)
}

func (ctrl *QualificationController) GetQualificationsByProviderID(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "providerID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.QualificationUsecase.GetQualificationsByProviderID(ctx, providerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResourceSuccessMessage, result)
}

func (ctrl *QualificationController) UpdateQualification(w http.ResponseWriter, r *http.Request) {
	qualificationID := chi.URLParam(r, "qualificationID")
	if qualificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "qualificationID"))
		return
	}

	request := new(requests.UpdateQualification)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.QualificationUsecase.UpdateQualification(ctx, qualificationID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateResourceSuccessMessage, result)
}

func (ctrl *QualificationController) DeleteQualification(w http.ResponseWriter, r *http.Request) {
	qualificationID := chi.URLParam(r, "qualificationID")
	if qualificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "qualificationID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.QualificationUsecase.DeleteQualification(ctx, qualificationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteResourceSuccessMessage, nil)
}
