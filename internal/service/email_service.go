package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends transactional mail through Amazon SES. When no sender
// address is configured the service stays disabled and every send becomes a
// logged no-op, so local development needs no AWS credentials.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService creates an email service. Pass an empty fromEmail to
// disable sending.
func NewEmailService(ctx context.Context, region, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: no sender address configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// SendWelcomeEmail sends a registration confirmation to a new user
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if !s.enabled {
		log.Printf("Email service disabled, skipping welcome email to %s", toEmail)
		return nil
	}

	subject := "Willkommen bei Lesen & Hören!"
	body := fmt.Sprintf(
		"Hallo %s,\n\n"+
			"dein Konto wurde erstellt. Du kannst jetzt mit den Lese- und "+
			"Hörübungen beginnen.\n\n"+
			"Viel Erfolg beim Deutschlernen!\n",
		toName,
	)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	log.Printf("Sent welcome email to %s", toEmail)
	return nil
}
