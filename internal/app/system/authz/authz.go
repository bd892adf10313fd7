// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/towdeskhq/towdesk/internal/app/system/auth"
)

// UserCtx returns the signed-in admin's name and email plus a found flag.
// ok=false means the request is from a visitor.
func UserCtx(r *http.Request) (name string, email string, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", false
	}
	return u.Name, u.Email, true
}

// IsAdmin reports whether the current request carries a signed-in admin.
// Every authenticated identity in this system is an admin; there are no
// other console roles.
func IsAdmin(r *http.Request) bool {
	_, ok := auth.CurrentUser(r)
	return ok
}
