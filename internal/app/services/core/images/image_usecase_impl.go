package images

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"mime/multipart"
	"strconv"
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/app/models"
	"carepass-service/internal/app/services/shared/storage"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
)

type imageUsecase struct {
	ImageRepository ImageRepository
	Storage         storage.Storage
	InternalConfig  *config.InternalConfig
	BucketName      string
}

func NewImageUsecase(
	imageMongoRepository ImageRepository,
	fileStorage storage.Storage,
	internalConfig *config.InternalConfig,
	bucketName string,
) ImageUsecase {
	return &imageUsecase{
		ImageRepository: imageMongoRepository,
		Storage:         fileStorage,
		InternalConfig:  internalConfig,
		BucketName:      bucketName,
	}
}

// GenerateUploadSignature signs the current unix timestamp with the
// Cloudinary API secret. The string to sign is "timestamp=<ts>" with the
// secret appended, hashed with SHA-1 and hex encoded, which is the form
// Cloudinary verifies for signed direct uploads.
func (uc *imageUsecase) GenerateUploadSignature(now time.Time) *responses.UploadSignature {
	timestamp := now.Unix()
	payload := "timestamp=" + strconv.FormatInt(timestamp, 10) + uc.InternalConfig.Cloudinary.ApiSecret

	digest := sha1.Sum([]byte(payload))
	return &responses.UploadSignature{
		Timestamp: timestamp,
		Signature: hex.EncodeToString(digest[:]),
		ApiKey:    uc.InternalConfig.Cloudinary.ApiKey,
		CloudName: uc.InternalConfig.Cloudinary.CloudName,
	}
}

func (uc *imageUsecase) SaveImageUrls(ctx context.Context, request *requests.SaveImageUrls) (*responses.ImageSet, error) {
	now := time.Now()
	imageSet := &models.ImageSet{
		HeadshotUrl: request.HeadshotUrl,
		GalleryUrl:  request.GalleryUrl,
		ReviewsUrl:  request.ReviewsUrl,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	imageSetID, err := uc.ImageRepository.CreateImageSet(ctx, imageSet)
	if err != nil {
		return nil, err
	}

	return &responses.ImageSet{
		ID:          imageSetID,
		HeadshotUrl: imageSet.HeadshotUrl,
		GalleryUrl:  imageSet.GalleryUrl,
		ReviewsUrl:  imageSet.ReviewsUrl,
	}, nil
}

func (uc *imageUsecase) UploadImage(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (*responses.UploadedImage, error) {
	objectName, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.BucketName)
	if err != nil {
		return nil, err
	}
	return &responses.UploadedImage{ObjectName: objectName}, nil
}
