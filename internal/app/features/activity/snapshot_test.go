package activity_test

import (
	"testing"

	"github.com/towdeskhq/towdesk/internal/app/features/activity"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/towdeskhq/towdesk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSnapshot_ReportingDriversAndActiveTrips(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	provider := activity.NewSnapshotProvider(db)

	onTrip := primitive.NewObjectID()
	if err := provider.Locations.Upsert(ctx, models.DriverLocation{
		DriverID: onTrip, Lat: 38.95, Lng: -92.33, OnTrip: true,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	idle := primitive.NewObjectID()
	if err := provider.Locations.Upsert(ctx, models.DriverLocation{
		DriverID: idle, Lat: 38.90, Lng: -92.30,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if _, err := provider.Trips.Create(ctx, models.Trip{
		Status: models.TripEnRoute, PickupAddress: "I-70 mile 121",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := provider.Trips.Create(ctx, models.Trip{
		Status: models.TripCompleted, PickupAddress: "done",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	raw, err := provider.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	snap, ok := raw.(activity.Snapshot)
	if !ok {
		t.Fatalf("Snapshot returned %T, want activity.Snapshot", raw)
	}

	if len(snap.Drivers) != 2 {
		t.Fatalf("got %d drivers, want 2", len(snap.Drivers))
	}
	var sawOnTrip bool
	for _, d := range snap.Drivers {
		if d.DriverID == onTrip.Hex() && d.OnTrip {
			sawOnTrip = true
		}
	}
	if !sawOnTrip {
		t.Errorf("on-trip driver not flagged: %+v", snap.Drivers)
	}

	if len(snap.ActiveTrips) != 1 {
		t.Fatalf("got %d active trips, want 1 (completed excluded)", len(snap.ActiveTrips))
	}
	if snap.ActiveTrips[0].Status != models.TripEnRoute {
		t.Errorf("active trip status = %q, want %q", snap.ActiveTrips[0].Status, models.TripEnRoute)
	}
}
