package mailer

import (
	"context"

	appconfig "carepass-service/internal/app/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/sirupsen/logrus"
)

func NewSESClient(driverConfig *appconfig.DriverConfig, log *logrus.Logger) *sesv2.Client {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(driverConfig.SES.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			driverConfig.SES.AccessKey,
			driverConfig.SES.SecretKey,
			"",
		)),
	)
	if err != nil {
		log.Fatalf("Failed to load AWS config for SES: %s", err.Error())
	}

	log.Println("Successfully initialized SES client")
	return sesv2.NewFromConfig(awsCfg)
}
