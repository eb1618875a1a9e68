package mailer

import (
	"context"

	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

type sesMailerService struct {
	Client *sesv2.Client
}

func NewSESMailerService(client *sesv2.Client) MailerService {
	return &sesMailerService{
		Client: client,
	}
}

func (svc *sesMailerService) SendEmail(ctx context.Context, message *requests.EmailMessage) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(message.Sender),
		Destination: &types.Destination{
			ToAddresses: []string{message.Recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(message.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(message.HTMLBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(message.TextBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	_, err := svc.Client.SendEmail(ctx, input)
	if err != nil {
		return exceptions.ErrMailerDispatch(err, constvars.EmailServiceSES)
	}
	return nil
}
