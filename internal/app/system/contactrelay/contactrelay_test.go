package contactrelay

import (
	"strings"
	"testing"
)

func TestClean_TruncatesFields(t *testing.T) {
	s := Clean(Submission{
		Name:    strings.Repeat("n", 300),
		Email:   "  USER@Example.COM  ",
		Message: strings.Repeat("m", 6000),
	})

	if got := len([]rune(s.Name)); got != 200 {
		t.Errorf("Name length = %d, want 200", got)
	}
	if got := len([]rune(s.Message)); got != 5000 {
		t.Errorf("Message length = %d, want 5000", got)
	}
	if s.Email != "user@example.com" {
		t.Errorf("Email = %q", s.Email)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		sub       Submission
		wantField string
	}{
		{"valid", Submission{Name: "Ann", Email: "ann@example.com", Message: "hi"}, ""},
		{"missing name", Submission{Email: "ann@example.com", Message: "hi"}, "name"},
		{"missing email", Submission{Name: "Ann", Message: "hi"}, "email"},
		{"bad email", Submission{Name: "Ann", Email: "not-an-email", Message: "hi"}, "email"},
		{"missing message", Submission{Name: "Ann", Email: "ann@example.com"}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, msg := Validate(tt.sub)
			if field != tt.wantField {
				t.Errorf("field = %q, want %q", field, tt.wantField)
			}
			if (msg == "") != (tt.wantField == "") {
				t.Errorf("msg = %q for field %q", msg, field)
			}
		})
	}
}
