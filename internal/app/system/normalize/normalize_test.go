package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Jane   Doe ", "Jane Doe"},
		{"Jane\tDoe", "Jane Doe"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmail(t *testing.T) {
	tests := []struct{ in, want string }{
		{" Jane@Example.COM ", "jane@example.com"},
		{"a@b.co", "a@b.co"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct{ in, want string }{
		{"+1 (555) 010-2233", "+15550102233"},
		{"555.010.2233", "5550102233"},
		{"55+5", "555"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPromoCode(t *testing.T) {
	if got := PromoCode(" tow20 "); got != "TOW20" {
		t.Errorf("PromoCode = %q, want TOW20", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"  hello  ", 3, "hel"}, // trimmed before truncation
		{"héllo", 2, "hé"},      // rune-safe
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
