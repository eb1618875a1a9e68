package mailer

import (
	"carepass-service/internal/app/config"

	mail "github.com/go-mail/mail"
)

// SMTPClient wraps a go-mail dialer bound to the configured relay. The dialer
// negotiates STARTTLS when the server offers it.
type SMTPClient struct {
	Dialer *mail.Dialer
	Host   string
}

func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	dialer := mail.NewDialer(
		driverConfig.SMTP.Host,
		driverConfig.SMTP.Port,
		driverConfig.SMTP.Username,
		driverConfig.SMTP.Password,
	)
	return &SMTPClient{
		Dialer: dialer,
		Host:   driverConfig.SMTP.Host,
	}
}
