package notify

import (
	"context"
	"fmt"
	"html"
	"log"

	"loan-portal/internal/domain/loan"
	"loan-portal/internal/emi"
)

const loanReceivedSubject = "Loan application received"

type Notifier interface {
	LoanReceived(ctx context.Context, a *loan.Application) error
}

// Config picks SendGrid when APIKey is set and the log notifier otherwise.
type Config struct {
	APIKey   string
	From     string
	FromName string
}

func New(cfg Config) Notifier {
	if cfg.APIKey == "" {
		log.Printf("notify: SENDGRID_API_KEY not set, confirmation mails are logged only")
		return Log{}
	}
	return NewSendGrid(cfg.APIKey, cfg.From, cfg.FromName)
}

// Log writes the confirmation to the process log instead of sending it.
type Log struct{}

func (Log) LoanReceived(_ context.Context, a *loan.Application) error {
	log.Printf("notify: %q to %s for application %s", loanReceivedSubject, a.Email, a.ID)
	return nil
}

func plainBody(a *loan.Application) string {
	return fmt.Sprintf(
		"Dear %s,\n\nWe have received your %s loan application for %s over %d months.\n"+
			"Reference: %s\n\nOur team will contact you shortly.\n",
		a.Name, a.LoanType, emi.FormatINR(a.Amount), a.Duration, a.ID)
}

func htmlBody(a *loan.Application) string {
	return fmt.Sprintf(
		"<p>Dear %s,</p><p>We have received your <strong>%s</strong> loan application for "+
			"<strong>%s</strong> over %d months.</p><p>Reference: <code>%s</code></p>"+
			"<p>Our team will contact you shortly.</p>",
		html.EscapeString(a.Name), html.EscapeString(a.LoanType),
		emi.FormatINR(a.Amount), a.Duration, a.ID)
}
