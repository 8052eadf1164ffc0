package relay

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Mail is an outgoing notification about a contact submission.
type Mail struct {
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers Mail to the site owner.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// SMTPConfig holds the outgoing mail settings.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string // defaults to User
}

// SMTPMailer sends through an authenticated SMTP account.
type SMTPMailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// Send composes and submits m. The message is From the authenticated
// account with Reply-To set to the visitor.
func (s *SMTPMailer) Send(ctx context.Context, m Mail) error {
	if s.cfg.User == "" || s.cfg.Password == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte("To: " + headerValue(s.cfg.To) + "\r\n" +
		"From: " + headerValue(s.cfg.User) + "\r\n" +
		"Reply-To: " + headerValue(m.ReplyTo) + "\r\n" +
		"Subject: " + headerValue(m.Subject) + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		m.Body + "\r\n")

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	if err := s.send(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("sending mail via %s: %w", s.cfg.Host, err)
	}
	return nil
}

// headerValue drops line breaks so user input cannot add headers.
func headerValue(v string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(v)
}

// Compose builds the owner notification for a submission.
func Compose(r Request) Mail {
	return Mail{
		ReplyTo: r.Email,
		Subject: "New Portfolio Message from " + r.Name,
		Body:    fmt.Sprintf("You have a new message from %s:\n\n%s", r.Email, r.Message),
	}
}
