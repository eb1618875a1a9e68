package mailer

import (
	"context"

	"carepass-service/internal/app/drivers/mailer"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/exceptions"

	mail "github.com/go-mail/mail"
)

type smtpMailerService struct {
	Client *mailer.SMTPClient
}

func NewSMTPMailerService(client *mailer.SMTPClient) MailerService {
	return &smtpMailerService{
		Client: client,
	}
}

func (svc *smtpMailerService) SendEmail(ctx context.Context, message *requests.EmailMessage) error {
	m := mail.NewMessage()
	m.SetHeader("From", message.Sender)
	m.SetHeader("To", message.Recipient)
	m.SetHeader("Subject", message.Subject)
	m.SetBody(constvars.MIMETextPlain, message.TextBody)
	m.AddAlternative(constvars.MIMETextHTML, message.HTMLBody)

	// DialAndSend has no context variant; honor cancellation by checking
	// before the dial.
	if err := ctx.Err(); err != nil {
		return exceptions.ErrMailerDispatch(err, constvars.EmailServiceSMTP)
	}

	if err := svc.Client.Dialer.DialAndSend(m); err != nil {
		return exceptions.ErrMailerDispatch(err, constvars.EmailServiceSMTP)
	}
	return nil
}
