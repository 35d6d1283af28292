package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"loan-portal/internal/domain/loan"
)

type SendGrid struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGrid(apiKey, from, fromName string) *SendGrid {
	return &SendGrid{client: sendgrid.NewSendClient(apiKey), from: mail.NewEmail(fromName, from)}
}

func (s *SendGrid) LoanReceived(ctx context.Context, a *loan.Application) error {
	msg := mail.NewSingleEmail(s.from, loanReceivedSubject, mail.NewEmail(a.Name, a.Email), plainBody(a), htmlBody(a))
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
