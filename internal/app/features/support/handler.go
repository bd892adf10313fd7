package support

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	contactstore "github.com/towdeskhq/towdesk/internal/app/store/contactmsgs"
	supportstore "github.com/towdeskhq/towdesk/internal/app/store/support"
	"github.com/towdeskhq/towdesk/internal/app/system/authz"
	"github.com/towdeskhq/towdesk/internal/app/system/mailer"
	"github.com/towdeskhq/towdesk/internal/app/system/normalize"
	"github.com/towdeskhq/towdesk/internal/app/system/sanitize"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const replyMax = 5000

// Handler is the support inbox: threads from the mobile apps plus contact
// form submissions, with admin replies stored and relayed by mail.
type Handler struct {
	Support *supportstore.Store
	Contact *contactstore.Store
	Mailer  *mailer.Mailer
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, mail *mailer.Mailer, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Support: supportstore.New(db),
		Contact: contactstore.New(db),
		Mailer:  mail,
		Log:     logger,
		ErrLog:  errLog,
	}
}

type threadRow struct {
	Sender    string
	LastBody  string
	LastAt    time.Time
	Messages  int64
	Unreplied bool
}

type contactRow struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

type inboxData struct {
	viewdata.BaseVM
	Threads  []threadRow
	Contacts []contactRow
}

type messageRow struct {
	FromAdmin bool
	AdminName string
	Body      string
	CreatedAt time.Time
}

type threadData struct {
	viewdata.BaseVM
	Sender   string
	Messages []messageRow
	Error    string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /support                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeInbox(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	threads, err := h.Support.Threads(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing support threads", err,
			"A database error occurred.", "/dashboard")
		return
	}

	contacts, err := h.Contact.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing contact messages", err,
			"A database error occurred.", "/dashboard")
		return
	}

	data := inboxData{
		BaseVM: viewdata.NewBaseVM(r, "Support", "/dashboard"),
	}
	for _, t := range threads {
		data.Threads = append(data.Threads, threadRow{
			Sender:    t.Sender,
			LastBody:  sanitize.Text(normalize.Truncate(t.LastBody, 120)),
			LastAt:    t.LastAt,
			Messages:  t.Messages,
			Unreplied: t.Unreplied,
		})
	}
	for _, c := range contacts {
		data.Contacts = append(data.Contacts, contactRow{
			Name:      sanitize.Text(c.Name),
			Email:     c.Email,
			Subject:   sanitize.Text(c.Subject),
			Message:   sanitize.Text(normalize.Truncate(c.Message, 200)),
			CreatedAt: c.CreatedAt,
		})
	}

	templates.Render(w, r, "support_inbox", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /support/thread?sender=...                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeThread(w http.ResponseWriter, r *http.Request) {
	sender := normalize.Email(r.URL.Query().Get("sender"))
	if sender == "" {
		http.Redirect(w, r, "/support", http.StatusSeeOther)
		return
	}
	h.renderThread(w, r, sender, "")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /support/thread                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/support")
		return
	}

	sender := normalize.Email(r.FormValue("sender"))
	body := normalize.Truncate(r.FormValue("body"), replyMax)
	if sender == "" {
		http.Redirect(w, r, "/support", http.StatusSeeOther)
		return
	}
	if body == "" {
		h.renderThread(w, r, sender, "Please enter a reply.")
		return
	}

	adminName, _, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Support.Reply(ctx, sender, adminName, body); err != nil {
		h.ErrLog.LogServerError(w, r, "database error saving reply", err,
			"A database error occurred.", "/support")
		return
	}

	// Relay by mail, best effort; the stored reply is the record.
	err := h.Mailer.Send(mailer.Email{
		To:       sender,
		Subject:  "Reply from " + viewdata.SiteName + " support",
		TextBody: body,
	})
	if err != nil {
		h.Log.Warn("support reply email failed", zap.String("to", sender), zap.Error(err))
	}

	http.Redirect(w, r, "/support/thread?sender="+sender, http.StatusSeeOther)
}

func (h *Handler) renderThread(w http.ResponseWriter, r *http.Request, sender, errMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msgs, err := h.Support.Conversation(ctx, sender)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading conversation", err,
			"A database error occurred.", "/support")
		return
	}

	data := threadData{
		BaseVM: viewdata.NewBaseVM(r, sender, "/support"),
		Sender: sender,
		Error:  errMsg,
	}
	for _, m := range msgs {
		data.Messages = append(data.Messages, messageRow{
			FromAdmin: m.FromAdmin,
			AdminName: m.AdminName,
			Body:      sanitize.Text(m.Body),
			CreatedAt: m.CreatedAt,
		})
	}

	templates.Render(w, r, "support_thread", data)
}
