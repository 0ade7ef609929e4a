// Package mailer delivers transactional email over SMTP.
package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/resumeforge/resumeforge-server/internal/model"
)

var _ model.Mailer = (*SMTP)(nil)

// Config holds SMTP delivery settings.
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTP sends mail through a gomail dialer.
type SMTP struct {
	config Config
	send   func(m *gomail.Message) error
}

// New creates an SMTP mailer from config.
func New(config Config) *SMTP {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	return &SMTP{
		config: config,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

// SendResetCode emails a password reset code to the recipient. It returns a
// configuration error when SMTP delivery is disabled or incomplete, so the
// caller can report the failure without leaking transport details.
func (s *SMTP) SendResetCode(_ context.Context, to, name, code string) error {
	if !s.config.Enabled || s.config.Host == "" {
		return model.NewConfigurationError("email delivery is not configured")
	}

	if name == "" {
		name = "User"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your AI Resume password reset code")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\n"+
			"We received a request to reset your AI Resume password.\n\n"+
			"Your reset code is: %s\n\n"+
			"The code expires in 10 minutes. If you did not request a reset, you can ignore this email.\n",
		name, code,
	))

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send reset code email: %w", err)
	}

	return nil
}
