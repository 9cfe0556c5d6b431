package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"bengkel-backend/internal/config"
	"bengkel-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	log       *slog.Logger
}

// NewEmailService builds a SendGrid-backed mailer. An empty API key disables
// sending; every call then succeeds without doing anything.
func NewEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridEmailService{
		apiKey:    cfg.SendGridAPIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       logger.WithComponent("email-service"),
	}
}

func (s *sendGridEmailService) SendTransactionApproved(ctx context.Context, email, name, toolName string) error {
	subject := "Your tool request has been approved"
	body := fmt.Sprintf("Hi %s,\n\nYour request for %s has been approved. You can pick up the tool at the workshop.\n", name, toolName)
	return s.send(ctx, email, name, subject, body)
}

func (s *sendGridEmailService) SendTransactionRejected(ctx context.Context, email, name, toolName string) error {
	subject := "Your tool request has been rejected"
	body := fmt.Sprintf("Hi %s,\n\nUnfortunately your request for %s has been rejected. Contact the workshop head for details.\n", name, toolName)
	return s.send(ctx, email, name, subject, body)
}

func (s *sendGridEmailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	if s.apiKey == "" {
		s.log.Debug("email disabled, skipping", "subject", subject, "to", toEmail)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	s.log.Info("email sent", "subject", subject, "to", toEmail)
	return nil
}
