package users

import (
	"net/http"
	"time"

	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type userRow struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	Status    string
	TripCount int
	CreatedAt time.Time
}

func (userRow) from(u models.User) userRow {
	status := u.Status
	if status == "" {
		status = "active"
	}
	return userRow{
		ID:        u.ID.Hex(),
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Status:    status,
		TripCount: u.TripCount,
		CreatedAt: u.CreatedAt,
	}
}

func userRows(us []models.User) []userRow {
	rows := make([]userRow, 0, len(us))
	for _, u := range us {
		rows = append(rows, userRow{}.from(u))
	}
	return rows
}

func pathParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}
