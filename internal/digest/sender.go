package digest

import (
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"

	"biodigest/internal/logger"
)

// SenderConfig holds the SMTP settings for digest delivery.
type SenderConfig struct {
	Host      string
	Port      int
	User      string
	Pass      string
	FromEmail string
	Recipient string
}

// Sender delivers rendered digests via SMTP with STARTTLS.
type Sender struct {
	cfg SenderConfig
}

func NewSender(cfg SenderConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers the message. Delivery failure is the one error the
// whole run exists to avoid, so callers treat it as fatal.
func (s *Sender) Send(msg *RenderedMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromEmail, "Wikipedia Digest"))
	m.SetHeader("To", s.cfg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	dialer.Timeout = 30 * time.Second
	dialer.StartTLSPolicy = gomail.MandatoryStartTLS

	logger.Info("connecting to SMTP server", "host", s.cfg.Host, "port", s.cfg.Port)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send digest to %s: %w", s.cfg.Recipient, err)
	}

	logger.Info("digest email sent", "to", s.cfg.Recipient, "subject", msg.Subject)
	return nil
}
