package activity

import (
	"context"
	"net/http"

	uierrors "github.com/towdeskhq/towdesk/internal/app/features/errors"
	"github.com/towdeskhq/towdesk/internal/app/system/livefeed"
	"github.com/towdeskhq/towdesk/internal/app/system/staticmap"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"github.com/towdeskhq/towdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Map framing when at least one driver is reporting. With no positions the
// page shows a placeholder instead of an empty map.
const (
	mapZoom   = 12
	mapWidth  = 900
	mapHeight = 500
)

// Handler renders the live activity screen: a static map of reporting
// drivers plus a feed of active trips, updated over the websocket feed.
type Handler struct {
	Snapshots *SnapshotProvider
	Feed      *livefeed.Hub
	Maps      *staticmap.Builder
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

type pageData struct {
	viewdata.BaseVM
	MapURL     string
	MapMissing bool
	Snapshot   Snapshot
}

func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	raw, err := h.Snapshots.Snapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error building activity snapshot", err,
			"A database error occurred.", "/dashboard")
		return
	}
	snap := raw.(Snapshot)

	data := pageData{
		BaseVM:     viewdata.NewBaseVM(r, "Live activity", "/dashboard"),
		MapMissing: !h.Maps.Configured(),
		Snapshot:   snap,
	}

	if len(snap.Drivers) > 0 {
		markers := make([]staticmap.Marker, 0, len(snap.Drivers))
		var sumLat, sumLng float64
		for _, d := range snap.Drivers {
			color := "green"
			if d.OnTrip {
				color = "red"
			}
			markers = append(markers, staticmap.Marker{Lat: d.Lat, Lng: d.Lng, Color: color})
			sumLat += d.Lat
			sumLng += d.Lng
		}
		n := float64(len(snap.Drivers))
		data.MapURL = h.Maps.URL(sumLat/n, sumLng/n, mapZoom, mapWidth, mapHeight, markers)
	}

	templates.Render(w, r, "activity", data)
}
