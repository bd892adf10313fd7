// internal/app/system/mailer/mailer.go

// Package mailer sends outbound email over SMTP. Sends are best effort and
// at-most-once; nothing is queued or retried.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Email is one outbound message.
type Email struct {
	To       string
	ReplyTo  string // replies go straight to the submitter when set
	Subject  string
	TextBody string
	HTMLBody string
}

// Config holds the SMTP settings from AppConfig.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// MissingVar returns the name of the first required configuration variable
// that is absent, or "". Handlers use this to surface which variable is
// missing as a server error, distinct from user error.
func (c Config) MissingVar() string {
	switch {
	case c.Host == "":
		return "mail_smtp_host"
	case c.Port == 0:
		return "mail_smtp_port"
	case c.From == "":
		return "mail_from"
	}
	return ""
}

// Mailer sends email through one SMTP endpoint.
type Mailer struct {
	cfg Config
	log *zap.Logger

	// sendMail is swappable for tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New constructs a Mailer. It does not dial; misconfiguration surfaces on
// the first Send.
func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: logger, sendMail: smtp.SendMail}
}

// Send delivers one email. Provider errors are logged with detail here;
// callers surface only a generic failure.
func (m *Mailer) Send(e Email) error {
	if v := m.cfg.MissingVar(); v != "" {
		return fmt.Errorf("mail configuration incomplete: %s is not set", v)
	}
	if e.To == "" {
		return fmt.Errorf("email has no recipient")
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	msg := m.build(e)
	if err := m.sendMail(addr, auth, m.cfg.From, []string{e.To}, msg); err != nil {
		m.log.Error("smtp send failed",
			zap.String("host", m.cfg.Host),
			zap.String("to", e.To),
			zap.Error(err))
		return err
	}
	return nil
}

func (m *Mailer) build(e Email) []byte {
	var b strings.Builder
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", e.To)
	if e.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", e.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(e.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	if e.HTMLBody != "" {
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		b.WriteString(e.HTMLBody)
	} else {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(e.TextBody)
	}
	return []byte(b.String())
}

// sanitizeHeader strips CR/LF so user-supplied subjects cannot inject
// additional headers.
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
