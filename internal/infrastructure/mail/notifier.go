// Package mail delivers gazette match alerts as multipart plain+HTML email
// over authenticated SMTP submission.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"GazetteWatch/internal/config"
	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/ports"
)

// Notifier sends one alert message per run summarizing all findings.
type Notifier struct {
	cfg      config.EmailConfig
	password string
	logger   *slog.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier builds the notifier with a password already resolved from the
// credential store; the config never carries it.
func NewNotifier(cfg config.EmailConfig, password string, log *slog.Logger) *Notifier {
	return &Notifier{cfg: cfg, password: password, logger: log}
}

// Notify is a no-op when there are no findings; the system never sends an
// empty alert. Transport failures return ErrNotify for the caller to log.
func (n *Notifier) Notify(ctx context.Context, findings []domain.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	if n.cfg.Host == "" || n.cfg.From == "" || len(n.cfg.To) == 0 {
		return fmt.Errorf("mail notifier misconfigured: %w", domain.ErrNotify)
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("set from %s: %v: %w", n.cfg.From, err, domain.ErrNotify)
	}
	if err := msg.To(n.cfg.To...); err != nil {
		return fmt.Errorf("set recipients: %v: %w", err, domain.ErrNotify)
	}
	msg.Subject(buildSubject(n.cfg.SubjectPrefix, findings))
	msg.SetBodyString(gomail.TypeTextPlain, buildPlainBody(findings))
	msg.AddAlternativeString(gomail.TypeTextHTML, buildHTMLBody(findings))

	client, err := gomail.NewClient(n.cfg.Host,
		gomail.WithPort(n.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.User),
		gomail.WithPassword(n.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %v: %w", err, domain.ErrNotify)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send alert: %v: %w", err, domain.ErrNotify)
	}

	if n.logger != nil {
		n.logger.Info("alert sent", "findings", len(findings), "recipients", len(n.cfg.To))
	}
	return nil
}
