package trips

import (
	"net/http"
	"time"

	"github.com/towdeskhq/towdesk/internal/app/system/fees"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// tripRow is the render-time view of a trip. Commission and earnings are
// derived here from the amount and never persisted.
type tripRow struct {
	ID             string
	TripNumber     string
	Status         string
	VehicleMake    string
	VehicleModel   string
	PickupAddress  string
	DropoffAddress string
	Amount         float64
	Commission     float64
	Earnings       float64
	PromoCode      string
	RequestedAt    time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time
}

func (tripRow) from(t models.Trip) tripRow {
	return tripRow{
		ID:             t.ID.Hex(),
		TripNumber:     t.TripNumber,
		Status:         t.Status,
		VehicleMake:    t.VehicleMake,
		VehicleModel:   t.VehicleModel,
		PickupAddress:  t.PickupAddress,
		DropoffAddress: t.DropoffAddress,
		Amount:         t.Amount,
		Commission:     fees.Commission(t.Amount),
		Earnings:       fees.Earnings(t.Amount),
		PromoCode:      t.PromoCode,
		RequestedAt:    t.RequestedAt,
		CompletedAt:    t.CompletedAt,
		CancelledAt:    t.CancelledAt,
	}
}

func tripRows(ts []models.Trip) []tripRow {
	rows := make([]tripRow, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, tripRow{}.from(t))
	}
	return rows
}

func pathParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}
