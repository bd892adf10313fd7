package metricsstore

import (
	"context"

	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts is the set of totals shown on the dashboard.
type Counts struct {
	Users          int64
	Drivers        int64
	PendingDrivers int64
	ActiveTrips    int64
	TotalTrips     int64
	PendingPayouts int64
}

// FetchDashboardCounts returns the high-level counts used by the dashboard.
// Intentionally tolerant: on error it returns 0 for that counter.
func FetchDashboardCounts(ctx context.Context, db *mongo.Database) Counts {
	var out Counts

	if n, err := db.Collection("users").CountDocuments(ctx, bson.M{}); err == nil {
		out.Users = n
	}

	if n, err := db.Collection("drivers").CountDocuments(ctx, bson.M{}); err == nil {
		out.Drivers = n
	}
	if n, err := db.Collection("drivers").CountDocuments(ctx, bson.M{"status": models.DriverPending}); err == nil {
		out.PendingDrivers = n
	}

	if n, err := db.Collection("trips").CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": []string{models.TripAssigned, models.TripEnRoute}},
	}); err == nil {
		out.ActiveTrips = n
	}
	if n, err := db.Collection("trips").CountDocuments(ctx, bson.M{}); err == nil {
		out.TotalTrips = n
	}

	if n, err := db.Collection("payout_requests").CountDocuments(ctx, bson.M{"status": models.PayoutPending}); err == nil {
		out.PendingPayouts = n
	}

	return out
}
