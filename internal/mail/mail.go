package mail

import (
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/smtp"
	"strings"
	"time"
)

// Dispatcher delivers a message to its recipients. Implementations do not
// retry; a failed dispatch is reported to the caller as is.
type Dispatcher interface {
	Send(subject, body, from string, to []string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTP sends plain-text mail through a single upstream relay.
type SMTP struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

func (s *SMTP) Send(subject, body, from string, to []string) error {
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	contents := prepMailContents(to, from, subject, body)

	err := smtp.SendMail(
		fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		auth,
		from,
		to,
		contents,
	)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

func prepMailContents(to []string, from, subject, body string) []byte {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	builder.WriteString(fmt.Sprintf("From: %s\r\n", from))
	builder.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z)))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)))
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	builder.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	builder.WriteString("\r\n")
	writer := quotedprintable.NewWriter(&builder)
	writer.Write([]byte(body))
	writer.Close()
	builder.WriteString("\r\n")

	return []byte(builder.String())
}
