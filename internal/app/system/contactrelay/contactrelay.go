// Package contactrelay validates contact-form submissions and relays them by
// email. The public form and the JSON endpoint share this path so both apply
// the same rules.
package contactrelay

import (
	"context"
	"fmt"

	contactstore "github.com/towdeskhq/towdesk/internal/app/store/contactmsgs"
	"github.com/towdeskhq/towdesk/internal/app/system/inputval"
	"github.com/towdeskhq/towdesk/internal/app/system/mailer"
	"github.com/towdeskhq/towdesk/internal/app/system/normalize"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.uber.org/zap"
)

// Field limits, in runes. Free text is truncated before use, never rejected
// for length.
const (
	shortMax   = 200
	messageMax = 5000
)

// Submission is a contact-form submission after decoding, before cleaning.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ConfigError reports which mail configuration variable is absent.
type ConfigError struct {
	Var string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mail configuration incomplete: %s is not set", e.Var)
}

// Clean trims and truncates every field.
func Clean(s Submission) Submission {
	s.Name = normalize.Truncate(s.Name, shortMax)
	s.Email = normalize.Email(normalize.Truncate(s.Email, shortMax))
	s.Phone = normalize.Truncate(s.Phone, shortMax)
	s.Subject = normalize.Truncate(s.Subject, shortMax)
	s.Message = normalize.Truncate(s.Message, messageMax)
	return s
}

// Validate checks a cleaned submission. It returns the offending field name
// and a user-facing message, or "" when the submission is acceptable.
func Validate(s Submission) (field, msg string) {
	switch {
	case s.Name == "":
		return "name", "Please enter your name."
	case s.Email == "":
		return "email", "Please enter your email address."
	case !inputval.IsValidEmail(s.Email):
		return "email", "Please enter a valid email address."
	case s.Message == "":
		return "message", "Please enter a message."
	}
	return "", ""
}

// Sender delivers one email. *mailer.Mailer satisfies it; tests substitute
// a recorder.
type Sender interface {
	Send(e mailer.Email) error
}

// Relay delivers cleaned submissions: one email to the configured inbox with
// Reply-To set to the submitter, plus a best-effort record for the console.
type Relay struct {
	Mailer   Sender
	MailCfg  mailer.Config
	To       string
	Messages *contactstore.Store
	Log      *zap.Logger
}

// Deliver sends exactly one email for the submission. A *ConfigError means
// the server is misconfigured; any other error is a provider failure whose
// detail has already been logged.
func (rl *Relay) Deliver(ctx context.Context, s Submission) error {
	if v := rl.MailCfg.MissingVar(); v != "" {
		return &ConfigError{Var: v}
	}
	if rl.To == "" {
		return &ConfigError{Var: "contact_to"}
	}

	email := mailer.BuildContactEmail(rl.To, mailer.ContactEmailData{
		SiteName: viewdata.SiteName,
		Name:     s.Name,
		Email:    s.Email,
		Phone:    s.Phone,
		Subject:  s.Subject,
		Message:  s.Message,
	})
	if err := rl.Mailer.Send(email); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	// The email is the deliverable; the record is console convenience.
	if rl.Messages != nil {
		_, err := rl.Messages.Create(ctx, models.ContactMessage{
			Name:    s.Name,
			Email:   s.Email,
			Phone:   s.Phone,
			Subject: s.Subject,
			Message: s.Message,
		})
		if err != nil {
			rl.Log.Warn("record contact message failed", zap.Error(err))
		}
	}
	return nil
}
