package notification

import (
	"fmt"
	"net/smtp"

	"fixmarkt/config"
)

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// NewSMTPMailer builds a mailer from the application configuration.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		Host: config.AppConfig.SMTPHost,
		Port: config.AppConfig.SMTPPort,
		User: config.AppConfig.SMTPUser,
		Pass: config.AppConfig.SMTPPass,
		From: config.AppConfig.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, body))

	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}
