package images

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type ImageUsecase interface {
	GenerateUploadSignature(now time.Time) *responses.UploadSignature
	SaveImageUrls(ctx context.Context, request *requests.SaveImageUrls) (*responses.ImageSet, error)
	UploadImage(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (*responses.UploadedImage, error)
}

type ImageRepository interface {
	CreateImageSet(ctx context.Context, imageSet *models.ImageSet) (string, error)
}
