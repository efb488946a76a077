package mail

import (
	"context"

	"rice-shop/internal/config"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer delivers a single rendered message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// smtpMailer implements Mailer over SMTP with implicit TLS.
type smtpMailer struct {
	cfg    config.SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a Mailer that sends through the configured SMTP
// relay.
func NewSMTPMailer(cfg config.SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		logger: logger.With().Str("component", "smtp-mailer").Logger(),
	}
}

// Send dials the relay and delivers one message with a plain-text body
// and an HTML alternative. The send is synchronous; callers decide
// whether a failure is fatal for their operation.
func (m *smtpMailer) Send(ctx context.Context, to, subject, text, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.User, m.cfg.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	// Port 465 expects an implicit TLS session rather than STARTTLS.
	dialer.SSL = m.cfg.Port == 465

	if err := dialer.DialAndSend(msg); err != nil {
		m.logger.Error().
			Err(err).
			Str("to", to).
			Str("subject", subject).
			Msg("failed to send email")
		return err
	}

	m.logger.Debug().
		Str("to", to).
		Str("subject", subject).
		Msg("email sent")

	return nil
}
