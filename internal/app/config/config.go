package config

import (
	"fmt"

	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "carepass"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "carepass-media"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", ""),
			Port:     utils.GetEnvInt("SMTP_PORT", 587),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
		},
		SES: SES{
			Region:    utils.GetEnvString("SES_REGION", "us-east-1"),
			AccessKey: utils.GetEnvString("SES_ACCESS_KEY", ""),
			SecretKey: utils.GetEnvString("SES_SECRET_KEY", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                  utils.GetEnvString("APP_ENV", "development"),
			Port:                 utils.GetEnvString("APP_PORT", ":8080"),
			MaxRequests:          utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RabbitMQPaymentQueue: utils.GetEnvString("APP_RABBITMQ_PAYMENT_QUEUE", "payment-events"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Mailer: Mailer{
			Service:     utils.GetEnvString("EMAIL_SERVICE", ""),
			SenderEmail: utils.GetEnvString("EMAIL_SENDER", ""),
		},
		Cloudinary: Cloudinary{
			CloudName: utils.GetEnvString("CLOUDINARY_CLOUD_NAME", ""),
			ApiKey:    utils.GetEnvString("CLOUDINARY_API_KEY", ""),
			ApiSecret: utils.GetEnvString("CLOUDINARY_API_SECRET", ""),
		},
	}
}

// Validate enforces the fatal-if-invalid configuration contract. The process
// must not accept any request when this returns an error.
func (c *InternalConfig) Validate() error {
	switch c.Mailer.Service {
	case constvars.EmailServiceSES, constvars.EmailServiceSMTP:
	default:
		return fmt.Errorf("EMAIL_SERVICE must be %q or %q, got %q",
			constvars.EmailServiceSES, constvars.EmailServiceSMTP, c.Mailer.Service)
	}
	if c.Mailer.SenderEmail == "" {
		return fmt.Errorf("EMAIL_SENDER must be set")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.Cloudinary.CloudName == "" || c.Cloudinary.ApiKey == "" || c.Cloudinary.ApiSecret == "" {
		return fmt.Errorf("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET must be set")
	}
	return nil
}
