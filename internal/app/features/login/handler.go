// internal/app/features/login/handler.go
package login

import (
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	"github.com/towdeskhq/towdesk/internal/app/system/auth"
	"github.com/towdeskhq/towdesk/internal/app/system/credentials"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the console login form. Admin identity comes from the
// configured credential store; there is no user collection behind it.
type Handler struct {
	Creds  *credentials.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(creds *credentials.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Creds: creds, Log: logger, ErrLog: errLog}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign In", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email, ret)
		return
	}

	switch err := h.Creds.Check(email, password); {
	case err == nil:
		// authorized
	case errors.Is(err, credentials.ErrMisconfigured):
		h.ErrLog.LogServerError(w, r, "credential store misconfigured", err,
			"The server is misconfigured. Please contact the operator.", "/login")
		return
	default:
		h.Log.Info("admin login rejected", zap.String("email", email))
		h.renderFormWithError(w, r, "Invalid email or password.", email, ret)
		return
	}

	if err := auth.SignIn(w, r, strings.ToLower(email)); err != nil {
		h.ErrLog.LogServerError(w, r, "save session failed", err,
			"Unable to create session. Please try again.", "/login")
		return
	}

	dest := safeReturn(ret)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, ret string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign In", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}

// safeReturn only honors same-site relative return paths.
func safeReturn(ret string) string {
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return "/dashboard"
	}
	return ret
}
