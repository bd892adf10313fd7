package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	metricsstore "github.com/towdeskhq/towdesk/internal/app/store/metrics"
	tripstore "github.com/towdeskhq/towdesk/internal/app/store/trips"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin dashboard: headline counts plus the most recent
// trips. Everything is fetched fresh per request; there is no cache.
type Handler struct {
	DB     *mongo.Database
	Trips  *tripstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Trips:  tripstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

type dashboardData struct {
	viewdata.BaseVM
	Counts      metricsstore.Counts
	RecentTrips []tripRow
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, h.DB)

	recent, err := h.Trips.Recent(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading recent trips", err,
			"A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "dashboard", dashboardData{
		BaseVM:      viewdata.NewBaseVM(r, "Dashboard", "/"),
		Counts:      counts,
		RecentTrips: tripRows(recent),
	})
}
