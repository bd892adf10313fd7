package metricsstore_test

import (
	"testing"

	metricsstore "github.com/towdeskhq/towdesk/internal/app/store/metrics"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/towdeskhq/towdesk/internal/testutil"
)

func TestFetchDashboardCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, db)

	if counts.Users != 0 {
		t.Errorf("Users: got %d, want 0", counts.Users)
	}
	if counts.Drivers != 0 {
		t.Errorf("Drivers: got %d, want 0", counts.Drivers)
	}
	if counts.ActiveTrips != 0 {
		t.Errorf("ActiveTrips: got %d, want 0", counts.ActiveTrips)
	}
	if counts.PendingPayouts != 0 {
		t.Errorf("PendingPayouts: got %d, want 0", counts.PendingPayouts)
	}
}

func TestFetchDashboardCounts_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Rider One", "rider1@example.com", "active")
	fixtures.CreateUser(ctx, "Rider Two", "rider2@example.com", "active")
	fixtures.CreateUser(ctx, "Rider Three", "rider3@example.com", "disabled")

	d1 := fixtures.CreateDriver(ctx, "Driver One", "driver1@example.com", models.DriverApproved)
	fixtures.CreateDriver(ctx, "Driver Two", "driver2@example.com", models.DriverPending)

	fixtures.CreateTrip(ctx, models.TripAssigned, 120)
	fixtures.CreateTrip(ctx, models.TripEnRoute, 80)
	fixtures.CreateTrip(ctx, models.TripCompleted, 200)
	fixtures.CreateTrip(ctx, models.TripCancelled, 0)

	fixtures.CreatePayout(ctx, d1.ID, 150, models.PayoutPending)
	fixtures.CreatePayout(ctx, d1.ID, 90, models.PayoutPaid)

	counts := metricsstore.FetchDashboardCounts(ctx, db)

	if counts.Users != 3 {
		t.Errorf("Users: got %d, want 3", counts.Users)
	}
	if counts.Drivers != 2 {
		t.Errorf("Drivers: got %d, want 2", counts.Drivers)
	}
	if counts.PendingDrivers != 1 {
		t.Errorf("PendingDrivers: got %d, want 1", counts.PendingDrivers)
	}
	if counts.ActiveTrips != 2 {
		t.Errorf("ActiveTrips: got %d, want 2", counts.ActiveTrips)
	}
	if counts.TotalTrips != 4 {
		t.Errorf("TotalTrips: got %d, want 4", counts.TotalTrips)
	}
	if counts.PendingPayouts != 1 {
		t.Errorf("PendingPayouts: got %d, want 1", counts.PendingPayouts)
	}
}
