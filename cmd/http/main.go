package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/delivery/http/routers"
	"carepass-service/internal/app/drivers/database"
	"carepass-service/internal/app/drivers/logger"
	drivermailer "carepass-service/internal/app/drivers/mailer"
	"carepass-service/internal/app/drivers/messaging"
	"carepass-service/internal/app/drivers/storage"
	"carepass-service/internal/app/services/core/admins"
	"carepass-service/internal/app/services/core/doctors"
	"carepass-service/internal/app/services/core/images"
	"carepass-service/internal/app/services/core/payments"
	"carepass-service/internal/app/services/core/promos"
	"carepass-service/internal/app/services/core/providers"
	"carepass-service/internal/app/services/core/qualifications"
	"carepass-service/internal/app/services/core/users"
	"carepass-service/internal/app/services/core/waitlist"
	"carepass-service/internal/app/services/shared/events"
	"carepass-service/internal/app/services/shared/mailer"
	"carepass-service/internal/app/services/shared/redis"
	sharedstorage "carepass-service/internal/app/services/shared/storage"
	"carepass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewBootstrapLogger(internalConfig)

	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, log *logrus.Logger) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Mailer transport, selected once at startup
	var mailerService mailer.MailerService
	switch bootstrap.InternalConfig.Mailer.Service {
	case constvars.EmailServiceSES:
		sesClient := drivermailer.NewSESClient(bootstrap.DriverConfig, log)
		mailerService = mailer.NewSESMailerService(sesClient)
	case constvars.EmailServiceSMTP:
		smtpClient := drivermailer.NewSMTPClient(bootstrap.DriverConfig)
		mailerService = mailer.NewSMTPMailerService(smtpClient)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Promo
	promoMongoRepository := promos.NewPromoMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	promoUsecase := promos.NewPromoUsecase(bootstrap.Logger, promoMongoRepository, redisRepository)
	promoController := promos.NewPromoController(bootstrap.Logger, promoUsecase)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository, promoUsecase, mailerService, bootstrap.InternalConfig)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Waitlist
	waitlistMongoRepository := waitlist.NewWaitlistMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	waitlistUsecase := waitlist.NewWaitlistUsecase(waitlistMongoRepository)
	waitlistController := waitlist.NewWaitlistController(bootstrap.Logger, waitlistUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.InternalConfig)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Admin
	adminMongoRepository := admins.NewAdminMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	adminUsecase := admins.NewAdminUsecase(adminMongoRepository, bootstrap.InternalConfig)
	adminController := admins.NewAdminController(bootstrap.Logger, adminUsecase)

	// Provider
	providerMongoRepository := providers.NewProviderMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	providerUsecase := providers.NewProviderUsecase(providerMongoRepository)
	providerController := providers.NewProviderController(bootstrap.Logger, providerUsecase)

	// Qualification
	qualificationMongoRepository := qualifications.NewQualificationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	qualificationUsecase := qualifications.NewQualificationUsecase(qualificationMongoRepository, providerMongoRepository)
	qualificationController := qualifications.NewQualificationController(bootstrap.Logger, qualificationUsecase)

	// Payment
	paymentEventPublisher, err := events.NewPaymentEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQPaymentQueue,
	)
	if err != nil {
		log.Fatalf("Failed to initialize payment event publisher: %v", err)
	}
	paymentMongoRepository := payments.NewPaymentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		bootstrap.Logger,
		paymentMongoRepository,
		userMongoRepository,
		promoUsecase,
		paymentEventPublisher,
	)
	paymentController := payments.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Image
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	imageMongoRepository := images.NewImageMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	imageUsecase := images.NewImageUsecase(
		imageMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig.Minio.BucketName,
	)
	imageController := images.NewImageController(bootstrap.Logger, imageUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		userController,
		waitlistController,
		doctorController,
		adminController,
		providerController,
		qualificationController,
		promoController,
		paymentController,
		imageController,
	)
}
