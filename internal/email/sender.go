package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailSender implements Provider over SMTP.
type GomailSender struct {
	cfg Config
}

func NewGomailSender(cfg Config) (*GomailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.SMTPPort)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	return &GomailSender{cfg: cfg}, nil
}

func (s *GomailSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUsername,
		s.cfg.SMTPPassword,
	)

	return d.DialAndSend(m)
}
