package tripstore

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetch limits: the history list is capped, the dashboard shows only the
// most recent handful.
const (
	listLimit   = 200
	recentLimit = 5
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("trips")}
}

// GetByID loads a trip by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	var t models.Trip
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns up to listLimit trips, newest first. An empty status returns
// trips in every state.
func (s *Store) List(ctx context.Context, status string) ([]models.Trip, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "requested_at", Value: -1}}).
		SetLimit(listLimit)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var trips []models.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Recent returns the recentLimit most recent trips for the dashboard.
func (s *Store) Recent(ctx context.Context) ([]models.Trip, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "requested_at", Value: -1}}).
		SetLimit(recentLimit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var trips []models.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Active returns trips currently in flight (assigned or enroute).
func (s *Store) Active(ctx context.Context) ([]models.Trip, error) {
	filter := bson.M{"status": bson.M{"$in": []string{models.TripAssigned, models.TripEnRoute}}}

	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var trips []models.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// CountActive returns the number of trips currently in flight.
func (s *Store) CountActive(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": []string{models.TripAssigned, models.TripEnRoute}},
	})
}

// Create inserts a trip record. The mobile backend owns the lifecycle; the
// console only uses this in fixtures and admin corrections. A trip number is
// generated when absent.
func (s *Store) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	t.ID = primitive.NewObjectID()
	if t.TripNumber == "" {
		t.TripNumber = NewTripNumber()
	}
	if t.Status == "" {
		t.Status = models.TripRequested
	}
	now := time.Now().UTC()
	if t.RequestedAt.IsZero() {
		t.RequestedAt = now
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

// NewTripNumber generates a short human-readable trip reference.
func NewTripNumber() string {
	id := uuid.New().String()
	return "TRP-" + strings.ToUpper(id[:8])
}
