package mailer

import (
	"net/smtp"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testConfig() Config {
	return Config{
		Host:     "localhost",
		Port:     1025,
		From:     "noreply@towdesk.io",
		FromName: "TowDesk",
	}
}

func TestConfig_MissingVar(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"complete", testConfig(), ""},
		{"no host", Config{Port: 1025, From: "a@b.com"}, "mail_smtp_host"},
		{"no port", Config{Host: "h", From: "a@b.com"}, "mail_smtp_port"},
		{"no from", Config{Host: "h", Port: 25}, "mail_from"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.MissingVar(); got != tt.want {
				t.Errorf("MissingVar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSend_ExactlyOnceWithReplyTo(t *testing.T) {
	var calls int
	var gotTo []string
	var gotMsg []byte

	m := New(testConfig(), zap.NewNop())
	m.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		calls++
		gotTo = to
		gotMsg = msg
		return nil
	}

	e := BuildContactEmail("support@towdesk.io", ContactEmailData{
		SiteName: "TowDesk",
		Name:     "Jane",
		Email:    "jane@example.com",
		Message:  "hello",
	})
	if err := m.Send(e); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if calls != 1 {
		t.Errorf("sendMail calls = %d, want exactly 1", calls)
	}
	if len(gotTo) != 1 || gotTo[0] != "support@towdesk.io" {
		t.Errorf("to = %v", gotTo)
	}
	if !strings.Contains(string(gotMsg), "Reply-To: jane@example.com\r\n") {
		t.Error("message is missing Reply-To header for the submitter")
	}
}

func TestSend_MisconfiguredNamesVariable(t *testing.T) {
	m := New(Config{Port: 25, From: "a@b.com"}, zap.NewNop())
	err := m.Send(Email{To: "x@y.com", TextBody: "hi"})
	if err == nil || !strings.Contains(err.Error(), "mail_smtp_host") {
		t.Errorf("err = %v, want mention of mail_smtp_host", err)
	}
}

func TestSanitizeHeader(t *testing.T) {
	got := sanitizeHeader("hi\r\nBcc: evil@x.com")
	if strings.ContainsAny(got, "\r\n") {
		t.Errorf("header still contains CR/LF: %q", got)
	}
}

func TestBuildContactEmail_DefaultSubject(t *testing.T) {
	e := BuildContactEmail("ops@towdesk.io", ContactEmailData{SiteName: "TowDesk", Name: "A", Email: "a@b.com", Message: "m"})
	if !strings.Contains(e.Subject, "New contact form submission") {
		t.Errorf("Subject = %q", e.Subject)
	}
	if e.ReplyTo != "a@b.com" {
		t.Errorf("ReplyTo = %q", e.ReplyTo)
	}
}
