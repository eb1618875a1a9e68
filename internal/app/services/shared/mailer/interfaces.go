package mailer

import (
	"context"

	"carepass-service/internal/pkg/dto/requests"
)

// MailerService delivers a composed message through exactly one transport,
// chosen at process startup. Implementations wrap transport failures into a
// dispatch error carrying the transport name; transport-specific error types
// never cross this boundary.
type MailerService interface {
	SendEmail(ctx context.Context, message *requests.EmailMessage) error
}
