package storage

import (
	"context"
	"io"
	"mime/multipart"
	"path"

	"carepass-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// UploadFile stores the file under a generated object name so concurrent
// uploads with the same filename cannot overwrite each other.
func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName string) (string, error) {
	objectName := uuid.NewString() + path.Ext(fileHeader.Filename)
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}
