package payoutstore

import (
	"context"
	"time"

	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listLimit = 200

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("payout_requests")}
}

// GetByID loads a payout request by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PayoutRequest, error) {
	var p models.PayoutRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns up to listLimit payout requests, newest first. An empty
// status returns all.
func (s *Store) List(ctx context.Context, status string) ([]models.PayoutRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var payouts []models.PayoutRequest
	if err := cur.All(ctx, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

// SetPaid toggles a request between paid and pending. Marking paid stamps
// PaidAt; marking pending clears it. Last writer wins under concurrent
// admin edits.
func (s *Store) SetPaid(ctx context.Context, id primitive.ObjectID, paid bool) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}

	if paid {
		now := time.Now().UTC()
		set["status"] = models.PayoutPaid
		set["paid_at"] = now
	} else {
		set["status"] = models.PayoutPending
		unset["paid_at"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// CountPending returns the number of requests awaiting payment.
func (s *Store) CountPending(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": models.PayoutPending})
}
