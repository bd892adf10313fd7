package notificationstore

import (
	"context"
	"errors"
	"time"

	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listLimit = 100

var errBadAudience = errors.New(`audience must be "users", "drivers", or "all"`)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notifications")}
}

// Create records a composed announcement.
func (s *Store) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	switch n.Audience {
	case models.AudienceUsers, models.AudienceDrivers, models.AudienceAll:
	default:
		return models.Notification{}, errBadAudience
	}

	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// List returns up to listLimit announcements, newest first.
func (s *Store) List(ctx context.Context) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notes []models.Notification
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
