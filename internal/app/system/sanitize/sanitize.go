// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from free text that originated outside the
// console (support chat, contact submissions) before it is rendered back
// into admin pages.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s, leaving plain text.
func Text(s string) string {
	return strict.Sanitize(s)
}
