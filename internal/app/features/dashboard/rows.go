package dashboard

import (
	"time"

	"github.com/towdeskhq/towdesk/internal/domain/models"
)

// tripRow is one line of the recent-trips table.
type tripRow struct {
	ID          string
	TripNumber  string
	Status      string
	Amount      float64
	RequestedAt time.Time
}

func tripRows(trips []models.Trip) []tripRow {
	rows := make([]tripRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, tripRow{
			ID:          t.ID.Hex(),
			TripNumber:  t.TripNumber,
			Status:      t.Status,
			Amount:      t.Amount,
			RequestedAt: t.RequestedAt,
		})
	}
	return rows
}
