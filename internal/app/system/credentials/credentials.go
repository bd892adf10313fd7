// internal/app/system/credentials/credentials.go

// Package credentials holds the configured admin credential pairs and checks
// submitted logins against them. The configured email and password lists are
// parallel: position i in one corresponds to position i in the other. If that
// invariant is broken the store fails closed and every check returns
// ErrMisconfigured.
package credentials

import (
	"crypto/subtle"
	"errors"
	"strings"
)

var (
	// ErrMisconfigured is returned when the configured email/password lists
	// are empty or of unequal length. Callers must surface this as a server
	// error, never as an authentication rejection.
	ErrMisconfigured = errors.New("admin credential lists are missing or of unequal length")

	// ErrBadCredentials is returned for any email/password pair that does
	// not match. It carries no hint of whether the email or the password
	// was wrong.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Store is the authority for admin identity. Build it once at startup from
// configuration and pass it into handlers; never read the environment from
// inside a check.
type Store struct {
	emails    []string
	passwords []string
	err       error
}

// New parses the comma-separated email and password lists. Each entry is
// cleaned (surrounding whitespace and one matching pair of quotes stripped)
// and emails are lowercased. A Store is always returned; if the lists are
// empty or of unequal length the returned error is ErrMisconfigured and the
// Store rejects every check with the same error.
func New(emailsCSV, passwordsCSV string) (*Store, error) {
	emails := splitClean(emailsCSV, true)
	passwords := splitClean(passwordsCSV, false)

	s := &Store{emails: emails, passwords: passwords}
	if len(emails) == 0 || len(emails) != len(passwords) {
		s.err = ErrMisconfigured
	}
	return s, s.err
}

// Len reports the number of configured credential pairs.
func (s *Store) Len() int { return len(s.emails) }

// Check compares a submitted email/password against the configured pairs.
// It returns nil when authorized, ErrBadCredentials on a mismatch, and
// ErrMisconfigured when the store failed its parallel-list invariant.
//
// The password comparison is constant time. When the submitted password's
// length differs from the stored one, a dummy equal-length comparison is
// still performed so the rejection takes comparable time to an equal-length
// mismatch.
func (s *Store) Check(email, password string) error {
	if s.err != nil {
		return s.err
	}

	email = strings.ToLower(clean(email))
	idx := -1
	for i, e := range s.emails {
		if e == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBadCredentials
	}

	stored := []byte(s.passwords[idx])
	given := []byte(password)
	if len(given) != len(stored) {
		// Burn the same comparison work before rejecting.
		subtle.ConstantTimeCompare(stored, stored)
		return ErrBadCredentials
	}
	if subtle.ConstantTimeCompare(given, stored) != 1 {
		return ErrBadCredentials
	}
	return nil
}

// splitClean splits a comma-separated list, cleans each entry, and drops
// entries that are empty after cleaning.
func splitClean(csv string, lower bool) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		v := clean(part)
		if v == "" {
			continue
		}
		if lower {
			v = strings.ToLower(v)
		}
		out = append(out, v)
	}
	return out
}

// clean trims surrounding whitespace, then a single matching pair of quote
// characters, then whitespace again. Deployment tooling sometimes leaves
// quoted values in env lists; a stray quote must not break login.
func clean(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '"' || first == '\'') {
			v = v[1 : len(v)-1]
		}
	}
	return strings.TrimSpace(v)
}
