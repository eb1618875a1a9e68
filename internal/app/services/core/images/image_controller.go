package images

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

const maxUploadSizeBytes = 10 << 20

type ImageController struct {
	Log          *zap.Logger
	ImageUsecase ImageUsecase
}

func NewImageController(logger *zap.Logger, imageUsecase ImageUsecase) *ImageController {
	return &ImageController{
		Log:          logger,
		ImageUsecase: imageUsecase,
	}
}

func (ctrl *ImageController) GenerateUploadSignature(w http.ResponseWriter, r *http.Request) {
	result := ctrl.ImageUsecase.GenerateUploadSignature(time.Now())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateSignatureSuccessMessage, result)
}

func (ctrl *ImageController) SaveImageUrls(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveImageUrls)
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

	result, err := ctrl.ImageUsecase.SaveImageUrls(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveImageUrlsSuccessMessage, result)
}

func (ctrl *ImageController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSizeBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ImageUsecase.UploadImage(ctx, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadImageSuccessMessage, result)
}
