package notifications

import (
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
	"github.com/you/notehub/domain"
)

// SMTPServiceImpl implements domain.NotificationService over SMTP
type SMTPServiceImpl struct {
	client *mail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPService creates a new SMTP notification service. When host is empty
// the service logs messages instead of sending, which keeps local development
// working without a mail server.
func NewSMTPService(host string, port int, username, password, from string, logger *slog.Logger) (domain.NotificationService, error) {
	svc := &SMTPServiceImpl{from: from, logger: logger}
	if host == "" {
		return svc, nil
	}

	opts := []mail.Option{mail.WithPort(port)}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// SendEmail implements domain.NotificationService
func (s *SMTPServiceImpl) SendEmail(to, subject, htmlBody string) error {
	if s.client == nil {
		s.logger.Info("smtp not configured, skipping send", "to", to, "subject", subject)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := s.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
