package contact

import (
	"context"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	"github.com/towdeskhq/towdesk/internal/app/system/contactrelay"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the public contact form and relays submissions.
type Handler struct {
	Relay  *contactrelay.Relay
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(relay *contactrelay.Relay, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Relay: relay, Log: logger, ErrLog: errLog}
}

type formData struct {
	viewdata.BaseVM
	Error      string
	ErrorField string
	Sent       bool
	Form       contactrelay.Submission
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /contact                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "contact", formData{
		BaseVM: viewdata.NewBaseVM(r, "Contact Us", "/"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /contact                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse contact form failed", err, "Invalid form data.", "/contact")
		return
	}

	sub := contactrelay.Clean(contactrelay.Submission{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	})

	if field, msg := contactrelay.Validate(sub); field != "" {
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "contact", formData{
			BaseVM:     viewdata.NewBaseVM(r, "Contact Us", "/"),
			Error:      msg,
			ErrorField: field,
			Form:       sub,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Relay.Deliver(ctx, sub); err != nil {
		h.ErrLog.LogServerError(w, r, "contact relay failed", err,
			"We couldn't send your message right now. Please try again later.", "/contact")
		return
	}

	templates.Render(w, r, "contact", formData{
		BaseVM: viewdata.NewBaseVM(r, "Contact Us", "/"),
		Sent:   true,
	})
}
