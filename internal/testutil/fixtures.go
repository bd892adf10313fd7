// Package testutil provides helpers for store and handler tests. Store tests
// need a reachable MongoDB (TOWDESK_TEST_MONGO_URI or localhost); when none is
// available they skip rather than fail.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTestURI = "mongodb://localhost:27017"

// SetupTestDB connects to the test MongoDB and returns a fresh database that
// is dropped when the test finishes. Skips the test when Mongo is unreachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TOWDESK_TEST_MONGO_URI")
	if uri == "" {
		uri = defaultTestURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongo unavailable at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo unavailable at %s: %v", uri, err)
	}

	name := fmt.Sprintf("towdesk_test_%s", uuid.New().String()[:8])
	db := client.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// TestContext returns a context with a generous timeout for store tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// Fixtures inserts seed documents directly, bypassing the stores, so a test
// controls exactly what is in each collection.
type Fixtures struct {
	t  *testing.T
	db *mongo.Database
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, db: db}
}

// CreateUser inserts a rider account with the given status.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, status string) models.User {
	f.t.Helper()
	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  name,
		Email:     email,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "users", u)
	return u
}

// CreateDriver inserts a driver account with the given status.
func (f *Fixtures) CreateDriver(ctx context.Context, name, email, status string) models.Driver {
	f.t.Helper()
	now := time.Now().UTC()
	d := models.Driver{
		ID:        primitive.NewObjectID(),
		FullName:  name,
		Email:     email,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "drivers", d)
	return d
}

// CreateTrip inserts a trip with the given status and amount.
func (f *Fixtures) CreateTrip(ctx context.Context, status string, amount float64) models.Trip {
	f.t.Helper()
	now := time.Now().UTC()
	tr := models.Trip{
		ID:          primitive.NewObjectID(),
		TripNumber:  "TRP-" + uuid.New().String()[:8],
		Status:      status,
		Amount:      amount,
		RequestedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.insert(ctx, "trips", tr)
	return tr
}

// CreatePayout inserts a payout request with the given status.
func (f *Fixtures) CreatePayout(ctx context.Context, driverID primitive.ObjectID, amount float64, status string) models.PayoutRequest {
	f.t.Helper()
	now := time.Now().UTC()
	p := models.PayoutRequest{
		ID:        primitive.NewObjectID(),
		DriverID:  driverID,
		Amount:    amount,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "payout_requests", p)
	return p
}

// CreateSupportMessage inserts one message into a sender's thread.
func (f *Fixtures) CreateSupportMessage(ctx context.Context, sender, body string, fromAdmin bool) models.SupportMessage {
	f.t.Helper()
	m := models.SupportMessage{
		ID:        primitive.NewObjectID(),
		Sender:    sender,
		FromAdmin: fromAdmin,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "support_messages", m)
	return m
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s: %v", coll, err)
	}
}
