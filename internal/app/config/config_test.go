package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInternalConfig() *InternalConfig {
	return &InternalConfig{
		JWT:    JWT{Secret: "secret", ExpTimeInHour: 1},
		Mailer: Mailer{Service: "ses", SenderEmail: "hello@carepass.io"},
		Cloudinary: Cloudinary{
			CloudName: "carepass",
			ApiKey:    "key",
			ApiSecret: "shh",
		},
	}
}

func TestInternalConfigValidate(t *testing.T) {
	t.Run("Valid SES", func(t *testing.T) {
		cfg := validInternalConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Valid SMTP", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.Mailer.Service = "smtp"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Unrecognized Email Service", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.Mailer.Service = "sendgrid"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EMAIL_SERVICE")
	})

	t.Run("Empty Email Service", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.Mailer.Service = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing Sender", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.Mailer.SenderEmail = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing JWT Secret", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.JWT.Secret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing Cloudinary Credentials", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.Cloudinary.ApiSecret = ""
		assert.Error(t, cfg.Validate())
	})
}
