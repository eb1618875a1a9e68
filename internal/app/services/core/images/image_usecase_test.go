package images

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"
	"time"

	"carepass-service/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func signatureConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Cloudinary: config.Cloudinary{
			CloudName: "carepass",
			ApiKey:    "api-key-123",
			ApiSecret: "top-secret",
		},
	}
}

func TestGenerateUploadSignature(t *testing.T) {
	uc := NewImageUsecase(nil, nil, signatureConfig(), "carepass-media")
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Signs Timestamp With Secret", func(t *testing.T) {
		result := uc.GenerateUploadSignature(now)

		assert.Equal(t, now.Unix(), result.Timestamp)
		assert.Equal(t, "api-key-123", result.ApiKey)
		assert.Equal(t, "carepass", result.CloudName)

		digest := sha1.Sum([]byte("timestamp=1772366400top-secret"))
		assert.Equal(t, hex.EncodeToString(digest[:]), result.Signature)
	})

	t.Run("Lowercase Hex Of Forty Chars", func(t *testing.T) {
		result := uc.GenerateUploadSignature(now)
		assert.Regexp(t, `^[0-9a-f]{40}$`, result.Signature)
	})

	t.Run("Different Timestamps Differ", func(t *testing.T) {
		first := uc.GenerateUploadSignature(now)
		second := uc.GenerateUploadSignature(now.Add(time.Second))
		assert.NotEqual(t, first.Signature, second.Signature)
	})

	t.Run("Deterministic For Same Instant", func(t *testing.T) {
		first := uc.GenerateUploadSignature(now)
		second := uc.GenerateUploadSignature(now)
		assert.Equal(t, first.Signature, second.Signature)
	})
}
