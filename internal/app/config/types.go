package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App        App
		JWT        JWT
		Mailer     Mailer
		Cloudinary Cloudinary
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		SES      SES
		Logger   Logger
	}

	App struct {
		Env                  string
		Port                 string
		MaxRequests          int
		ShutdownTimeout      int
		RabbitMQPaymentQueue string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Mailer.Service selects the email transport once at startup. Recognized
	// values are constvars.EmailServiceSES and constvars.EmailServiceSMTP;
	// anything else fails config validation before the server starts.
	Mailer struct {
		Service     string
		SenderEmail string
	}

	Cloudinary struct {
		CloudName string
		ApiKey    string
		ApiSecret string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}

	SES struct {
		Region    string
		AccessKey string
		SecretKey string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
