package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"a@b.co", true},
		{"user@localhost", true},

		{"", false},
		{"   ", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},
		{"User Name <user@example.com>", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

type contactInput struct {
	Name    string `validate:"required,max=200" label:"Name"`
	Email   string `validate:"required,email" label:"Email"`
	Message string `validate:"required,max=5000" label:"Message"`
}

func TestValidate_Required(t *testing.T) {
	res := Validate(contactInput{Name: "", Email: "a@b.com", Message: "hello"})
	if !res.HasErrors() {
		t.Fatal("expected errors for empty name")
	}
	if res.First() != "Name is required." {
		t.Errorf("First() = %q", res.First())
	}
}

func TestValidate_AllValid(t *testing.T) {
	res := Validate(contactInput{Name: "Jane", Email: "a@b.com", Message: "hello"})
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestValidate_Max(t *testing.T) {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	res := Validate(contactInput{Name: string(long), Email: "a@b.com", Message: "hi"})
	if !res.HasErrors() {
		t.Fatal("expected max-length error")
	}
	if res.Errors[0].Field != "Name" {
		t.Errorf("field = %q, want Name", res.Errors[0].Field)
	}
}

func TestValidate_OneOf(t *testing.T) {
	type in struct {
		Audience string `validate:"required,oneof=users drivers all" label:"Audience"`
	}
	if res := Validate(in{Audience: "drivers"}); res.HasErrors() {
		t.Errorf("drivers should be valid: %v", res.Errors)
	}
	if res := Validate(in{Audience: "everyone"}); !res.HasErrors() {
		t.Error("everyone should be rejected")
	}
}

func TestValidate_OneMessagePerField(t *testing.T) {
	res := Validate(contactInput{Name: "", Email: "", Message: ""})
	if len(res.Errors) != 3 {
		t.Errorf("len(Errors) = %d, want 3 (one per field)", len(res.Errors))
	}
}
