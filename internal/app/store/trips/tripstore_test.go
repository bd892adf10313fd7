package tripstore_test

import (
	"strings"
	"testing"

	tripstore "github.com/towdeskhq/towdesk/internal/app/store/trips"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"github.com/towdeskhq/towdesk/internal/testutil"
)

func TestCreate_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tripstore.New(db)
	created, err := store.Create(ctx, models.Trip{
		PickupAddress: "123 Main St",
		Amount:        85,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(created.TripNumber, "TRP-") {
		t.Errorf("TripNumber = %q, want TRP- prefix", created.TripNumber)
	}
	if created.Status != models.TripRequested {
		t.Errorf("Status = %q, want %q", created.Status, models.TripRequested)
	}
	if created.RequestedAt.IsZero() || created.CreatedAt.IsZero() {
		t.Errorf("timestamps not set: %+v", created)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TripNumber != created.TripNumber {
		t.Errorf("round trip TripNumber = %q, want %q", got.TripNumber, created.TripNumber)
	}
}

func TestCreate_KeepsProvidedFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tripstore.New(db)
	created, err := store.Create(ctx, models.Trip{
		TripNumber:    "TRP-FIXED01",
		Status:        models.TripAssigned,
		PickupAddress: "dock 4",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.TripNumber != "TRP-FIXED01" {
		t.Errorf("TripNumber = %q, want provided value kept", created.TripNumber)
	}
	if created.Status != models.TripAssigned {
		t.Errorf("Status = %q, want %q", created.Status, models.TripAssigned)
	}
}

func TestListAndActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tripstore.New(db)
	seed := []string{
		models.TripRequested,
		models.TripAssigned,
		models.TripEnRoute,
		models.TripCompleted,
		models.TripCancelled,
	}
	for _, status := range seed {
		if _, err := store.Create(ctx, models.Trip{Status: status, PickupAddress: "x"}); err != nil {
			t.Fatalf("Create(%s): %v", status, err)
		}
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != len(seed) {
		t.Fatalf("List returned %d trips, want %d", len(all), len(seed))
	}

	completed, err := store.List(ctx, models.TripCompleted)
	if err != nil {
		t.Fatalf("List(completed): %v", err)
	}
	if len(completed) != 1 || completed[0].Status != models.TripCompleted {
		t.Errorf("List(completed) = %+v, want one completed trip", completed)
	}

	active, err := store.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("Active returned %d trips, want 2 (assigned + enroute)", len(active))
	}

	n, err := store.CountActive(ctx)
	if err != nil {
		t.Fatalf("CountActive: %v", err)
	}
	if n != 2 {
		t.Errorf("CountActive = %d, want 2", n)
	}
}

func TestNewTripNumber_Format(t *testing.T) {
	a := tripstore.NewTripNumber()
	b := tripstore.NewTripNumber()

	if !strings.HasPrefix(a, "TRP-") || len(a) != len("TRP-")+8 {
		t.Errorf("NewTripNumber() = %q, want TRP- plus 8 chars", a)
	}
	if a == b {
		t.Errorf("two trip numbers collided: %q", a)
	}
	if suffix := strings.TrimPrefix(a, "TRP-"); suffix != strings.ToUpper(suffix) {
		t.Errorf("suffix not uppercased: %q", a)
	}
}
