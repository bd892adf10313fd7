// Package apilogin exposes the admin credential check as a JSON endpoint for
// the mobile admin tooling. It validates a pair and reports the result; it
// never issues a session or token.
package apilogin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/towdeskhq/towdesk/internal/app/system/credentials"
	"go.uber.org/zap"
)

type Handler struct {
	Creds *credentials.Store
	Log   *zap.Logger
}

func NewHandler(creds *credentials.Store, logger *zap.Logger) *Handler {
	return &Handler{Creds: creds, Log: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/admin/login                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	// A malformed body is treated the same as an empty submission.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, response{Error: "email is required"})
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, response{Error: "password is required"})
		return
	}

	switch err := h.Creds.Check(req.Email, req.Password); {
	case err == nil:
		writeJSON(w, http.StatusOK, response{OK: true})
	case errors.Is(err, credentials.ErrMisconfigured):
		h.Log.Error("admin login check failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{Error: "server configuration error"})
	default:
		writeJSON(w, http.StatusUnauthorized, response{Error: "invalid credentials"})
	}
}

// MethodNotAllowed keeps non-POST requests inside the JSON contract.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
