package drivers

import (
	"net/http"
	"time"

	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type driverRow struct {
	ID            string
	FullName      string
	Email         string
	Phone         string
	Status        string
	LicenseNumber string
	TruckMake     string
	TruckModel    string
	LicensePlate  string
	Rating        float64
	TotalTrips    int
	TotalEarnings float64
	CreatedAt     time.Time
}

func (driverRow) from(d models.Driver) driverRow {
	return driverRow{
		ID:            d.ID.Hex(),
		FullName:      d.FullName,
		Email:         d.Email,
		Phone:         d.Phone,
		Status:        d.Status,
		LicenseNumber: d.LicenseNumber,
		TruckMake:     d.TruckMake,
		TruckModel:    d.TruckModel,
		LicensePlate:  d.LicensePlate,
		Rating:        d.Rating,
		TotalTrips:    d.TotalTrips,
		TotalEarnings: d.TotalEarnings,
		CreatedAt:     d.CreatedAt,
	}
}

func driverRows(ds []models.Driver) []driverRow {
	rows := make([]driverRow, 0, len(ds))
	for _, d := range ds {
		rows = append(rows, driverRow{}.from(d))
	}
	return rows
}

func pathParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}
