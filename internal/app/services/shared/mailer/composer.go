package mailer

import (
	"fmt"
	"time"

	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/exceptions"
)

// ComposeSubscriptionEmail builds the subscription confirmation message. The
// HTML and plain-text bodies are rendered from the same inputs within one
// call, including a single capture of the current year, so both renderings
// always agree on price and year.
func ComposeSubscriptionEmail(recipientName, recipientEmail, finalPrice, senderEmail string) (*requests.EmailMessage, error) {
	if recipientEmail == "" || senderEmail == "" {
		return nil, exceptions.ErrEmailAddressMissing(nil)
	}

	year := time.Now().Year()
	return &requests.EmailMessage{
		Subject:   constvars.EmailSubscriptionSubject,
		Recipient: recipientEmail,
		Sender:    senderEmail,
		HTMLBody:  fmt.Sprintf(constvars.EmailSubscriptionHTMLBodyFormat, recipientName, finalPrice, senderEmail, year),
		TextBody:  fmt.Sprintf(constvars.EmailSubscriptionTextBodyFormat, recipientName, finalPrice, senderEmail, year),
	}, nil
}
