package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrNoRecipient = errors.New("no recipient")

type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
	HTML    bool
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Default is the process-wide mailer, set at startup.
var Default Mailer = LogMailer{}

type SMTPConfig struct {
	Host     string
	Port     string
	From     string
	Password string
}

// New returns an SMTP mailer when a host is configured, otherwise a mailer
// that only logs.
func New(cfg SMTPConfig) Mailer {
	if cfg.Host == "" || cfg.From == "" {
		return LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

type SMTPMailer struct {
	cfg SMTPConfig
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	raw := Build(m.cfg.From, msg)

	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, []string{msg.To}, raw); err != nil {
		log.WithError(err).WithField("to", msg.To).Error("smtp send failed")
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Build renders the RFC 5322 message. Header values are stripped of line
// breaks.
func Build(from string, msg Message) []byte {
	contentType := "text/plain; charset=UTF-8"
	if msg.HTML {
		contentType = "text/html; charset=UTF-8"
	}

	var b strings.Builder
	b.WriteString("Subject: " + headerSafe(msg.Subject) + "\r\n")
	b.WriteString("From: " + headerSafe(from) + "\r\n")
	b.WriteString("To: " + headerSafe(msg.To) + "\r\n")
	if msg.ReplyTo != "" {
		b.WriteString("Reply-To: " + headerSafe(msg.ReplyTo) + "\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: " + contentType + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body + "\r\n")
	return []byte(b.String())
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	log.WithFields(log.Fields{
		"to":       msg.To,
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
	}).Info("mail not sent (SMTP not configured)")
	log.Debug(msg.Body)
	return nil
}
