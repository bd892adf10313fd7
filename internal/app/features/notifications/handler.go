package notifications

import (
	"context"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	notificationstore "github.com/towdeskhq/towdesk/internal/app/store/notifications"
	"github.com/towdeskhq/towdesk/internal/app/system/authz"
	"github.com/towdeskhq/towdesk/internal/app/system/inputval"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler composes and lists announcements. Delivery to devices is owned by
// the mobile backends; the stored record is the contract.
type Handler struct {
	Notes  *notificationstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Notes:  notificationstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// composeForm is validated before insert.
type composeForm struct {
	Title    string `validate:"required,max=200" label:"Title"`
	Body     string `validate:"required,max=2000" label:"Body"`
	Audience string `validate:"required,oneof=users drivers all" label:"Audience"`
}

type listData struct {
	viewdata.BaseVM
	Error         string
	Sent          bool
	Form          composeForm
	Notifications []models.Notification
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /notifications                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, listData{Sent: r.URL.Query().Get("sent") == "1"})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /notifications                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/notifications")
		return
	}

	form := composeForm{
		Title:    r.FormValue("title"),
		Body:     r.FormValue("body"),
		Audience: r.FormValue("audience"),
	}

	if res := inputval.Validate(form); res.HasErrors() {
		h.render(w, r, listData{Error: res.First(), Form: form})
		return
	}

	_, email, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	note, err := h.Notes.Create(ctx, models.Notification{
		Title:    form.Title,
		Body:     form.Body,
		Audience: form.Audience,
		SentBy:   email,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error saving notification", err,
			"A database error occurred.", "/notifications")
		return
	}

	h.Log.Info("notification composed",
		zap.String("notification_id", note.ID.Hex()),
		zap.String("audience", note.Audience))

	http.Redirect(w, r, "/notifications?sent=1", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data listData) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	notes, err := h.Notes.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing notifications", err,
			"A database error occurred.", "/dashboard")
		return
	}

	data.BaseVM = viewdata.NewBaseVM(r, "Notifications", "/dashboard")
	data.Notifications = notes
	templates.Render(w, r, "notifications", data)
}
