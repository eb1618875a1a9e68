package logger

import (
	"carepass-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewBootstrapLogger is used by the driver layer for connection lifecycle
// messages; the request path logs through zap.
func NewBootstrapLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	return log
}
