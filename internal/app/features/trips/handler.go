package trips

import (
	"context"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	tripstore "github.com/towdeskhq/towdesk/internal/app/store/trips"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler renders trip history and detail. The mobile backend owns the trip
// lifecycle; this screen is read-only.
type Handler struct {
	Trips  *tripstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Trips:  tripstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

type listData struct {
	viewdata.BaseVM
	Trips  []tripRow
	Status string
}

type detailData struct {
	viewdata.BaseVM
	Trip tripRow
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /trips                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := query.Get(r, "status")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	trips, err := h.Trips.List(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing trips", err,
			"A database error occurred.", "/dashboard")
		return
	}

	templates.Render(w, r, "trips_list", listData{
		BaseVM: viewdata.NewBaseVM(r, "Trips", "/dashboard"),
		Trips:  tripRows(trips),
		Status: status,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /trips/{id}                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(pathParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad trip id", err, "Invalid trip ID.", "/trips")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := h.Trips.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading trip", err,
			"A database error occurred.", "/trips")
		return
	}

	templates.Render(w, r, "trips_detail", detailData{
		BaseVM: viewdata.NewBaseVM(r, t.TripNumber, "/trips"),
		Trip:   tripRow{}.from(*t),
	})
}
