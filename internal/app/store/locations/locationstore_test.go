package locationstore_test

import (
	"testing"
	"time"

	locationstore "github.com/towdeskhq/towdesk/internal/app/store/locations"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/towdeskhq/towdesk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpsert_OneDocumentPerDriver(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := locationstore.New(db)
	driverID := primitive.NewObjectID()

	if err := store.Upsert(ctx, models.DriverLocation{
		DriverID: driverID, Lat: 38.95, Lng: -92.33,
	}); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if err := store.Upsert(ctx, models.DriverLocation{
		DriverID: driverID, Lat: 38.96, Lng: -92.34, OnTrip: true,
	}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	count, err := db.Collection("driver_locations").CountDocuments(ctx, bson.M{"driver_id": driverID})
	if err != nil {
		t.Fatalf("CountDocuments: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d documents for one driver, want 1", count)
	}

	loc, err := store.GetByDriver(ctx, driverID)
	if err != nil {
		t.Fatalf("GetByDriver: %v", err)
	}
	if loc.Lat != 38.96 || loc.Lng != -92.34 || !loc.OnTrip {
		t.Errorf("latest position not kept: %+v", loc)
	}
}

func TestActive_FreshnessWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := locationstore.New(db)
	fresh := primitive.NewObjectID()
	if err := store.Upsert(ctx, models.DriverLocation{DriverID: fresh, Lat: 1, Lng: 2}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// A position older than the freshness window, inserted directly since
	// Upsert always stamps now.
	stale := models.DriverLocation{
		ID:        primitive.NewObjectID(),
		DriverID:  primitive.NewObjectID(),
		Lat:       3,
		Lng:       4,
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
	}
	if _, err := db.Collection("driver_locations").InsertOne(ctx, stale); err != nil {
		t.Fatalf("insert stale: %v", err)
	}

	active, err := store.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("Active returned %d positions, want 1", len(active))
	}
	if active[0].DriverID != fresh {
		t.Errorf("Active returned the stale driver: %+v", active[0])
	}
}
