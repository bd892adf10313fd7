// internal/app/system/inputval/inputval.go

// Package inputval validates request input at the boundary. Form handlers
// build a small input struct with validation tags and call Validate; the
// result is either clean typed input or an enumerated list of field errors.
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FieldError is one validation failure, tied to the field's display label.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the failures from one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any field failed validation.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first failure message, or "".
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// Validate checks the exported string fields of a struct against their
// `validate` tags. Supported rules: required, max=N (runes), email,
// oneof=a b c. The `label` tag supplies the display name used in messages.
func Validate(input any) Result {
	var res Result

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" || field.Type.Kind() != reflect.String {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		value := v.Field(i).String()

		for _, rule := range strings.Split(rules, ",") {
			if msg := check(rule, label, value); msg != "" {
				res.Errors = append(res.Errors, FieldError{Field: field.Name, Message: msg})
				break // one message per field
			}
		}
	}
	return res
}

func check(rule, label, value string) string {
	switch {
	case rule == "required":
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("%s is required.", label)
		}
	case strings.HasPrefix(rule, "max="):
		n, err := strconv.Atoi(rule[len("max="):])
		if err == nil && len([]rune(value)) > n {
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		}
	case rule == "email":
		if value != "" && !IsValidEmail(value) {
			return fmt.Sprintf("%s must be a valid email address.", label)
		}
	case strings.HasPrefix(rule, "oneof="):
		if value == "" {
			return ""
		}
		for _, opt := range strings.Fields(rule[len("oneof="):]) {
			if value == opt {
				return ""
			}
		}
		return fmt.Sprintf("%s has an invalid value.", label)
	}
	return ""
}

// IsValidEmail reports whether s looks like a plain addr-spec. Display-name
// forms ("Name <a@b>") are rejected; single-label domains are allowed for
// dev environments.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	return validDotAtom(local) && validDotAtom(domain)
}

func validDotAtom(s string) bool {
	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("._%+-", r):
		default:
			return false
		}
	}
	return true
}
