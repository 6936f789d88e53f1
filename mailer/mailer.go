package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/wheelhouse/storefront/config"
	"github.com/wheelhouse/storefront/logger"
)

// Notifier sends a formatted HTML message to a destination email address.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPMailer implements Notifier over an SMTP transport. It is constructed
// once at boot; the dialer opens a fresh connection per send.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// New creates an SMTP-backed notifier.
func New(cfg config.MailConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log.WithComponent("mailer"),
	}
}

// Send delivers a single message. The context is honored for cancellation
// before dialing; gomail itself does not take a context.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("mail delivery failed", map[string]interface{}{
			logger.FieldEmail: to,
			logger.FieldError: err.Error(),
		})
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}
