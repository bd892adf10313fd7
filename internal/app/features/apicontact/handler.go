// Package apicontact is the JSON contact endpoint used by the public site's
// script and the mobile clients. Submissions relay through the same path as
// the HTML form.
package apicontact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/towdeskhq/towdesk/internal/app/system/contactrelay"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Relay *contactrelay.Relay
	Log   *zap.Logger
}

func NewHandler(relay *contactrelay.Relay, logger *zap.Logger) *Handler {
	return &Handler{Relay: relay, Log: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/contact                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	var req contactRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	sub := contactrelay.Clean(contactrelay.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})

	if field, _ := contactrelay.Validate(sub); field != "" {
		writeJSON(w, http.StatusBadRequest, response{Error: fmt.Sprintf("%s is required or invalid", field)})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Relay.Deliver(ctx, sub); err != nil {
		var cfgErr *contactrelay.ConfigError
		if errors.As(err, &cfgErr) {
			h.Log.Error("contact relay misconfigured", zap.String("var", cfgErr.Var))
			writeJSON(w, http.StatusInternalServerError,
				response{Error: fmt.Sprintf("server configuration error: %s is not set", cfgErr.Var)})
			return
		}
		// Provider detail is logged in the mailer; the caller gets nothing.
		writeJSON(w, http.StatusInternalServerError, response{Error: "failed to send message"})
		return
	}

	writeJSON(w, http.StatusOK, response{OK: true})
}

// HandlePreflight answers the CORS pre-flight with 204 and no body.
func (h *Handler) HandlePreflight(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	w.WriteHeader(http.StatusNoContent)
}

// MethodNotAllowed keeps non-POST requests inside the JSON contract.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	writeJSON(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
