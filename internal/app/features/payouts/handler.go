package payouts

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	payoutstore "github.com/towdeskhq/towdesk/internal/app/store/payouts"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler lists payout requests and lets an admin toggle them paid/unpaid.
// There is no settlement integration; the flag is bookkeeping.
type Handler struct {
	Payouts *payoutstore.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Payouts: payoutstore.New(db),
		Log:     logger,
		ErrLog:  errLog,
	}
}

type payoutRow struct {
	ID        string
	DriverID  string
	Amount    float64
	Status    string
	Note      string
	PaidAt    *time.Time
	CreatedAt time.Time
}

type listData struct {
	viewdata.BaseVM
	Payouts []payoutRow
	Status  string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /payouts                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := query.Get(r, "status")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	payouts, err := h.Payouts.List(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing payouts", err,
			"A database error occurred.", "/dashboard")
		return
	}

	rows := make([]payoutRow, 0, len(payouts))
	for _, p := range payouts {
		rows = append(rows, payoutRow{
			ID:        p.ID.Hex(),
			DriverID:  p.DriverID.Hex(),
			Amount:    p.Amount,
			Status:    p.Status,
			Note:      p.Note,
			PaidAt:    p.PaidAt,
			CreatedAt: p.CreatedAt,
		})
	}

	templates.Render(w, r, "payouts_list", listData{
		BaseVM:  viewdata.NewBaseVM(r, "Payouts", "/dashboard"),
		Payouts: rows,
		Status:  status,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /payouts/{id}/paid                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleTogglePaid flips a request between paid and pending. Last writer
// wins under concurrent admin edits.
func (h *Handler) HandleTogglePaid(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad payout id", err, "Invalid payout ID.", "/payouts")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/payouts")
		return
	}

	paid := r.FormValue("paid") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Payouts.SetPaid(ctx, id, paid); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating payout", err,
			"A database error occurred.", "/payouts")
		return
	}

	status := models.PayoutPending
	if paid {
		status = models.PayoutPaid
	}
	h.Log.Info("payout status changed",
		zap.String("payout_id", id.Hex()),
		zap.String("status", status))

	http.Redirect(w, r, "/payouts", http.StatusSeeOther)
}
