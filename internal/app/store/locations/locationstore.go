package locationstore

import (
	"context"
	"time"

	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// staleAfter bounds how old a position can be and still appear on the live
// map. Driver apps report every few seconds while online.
const staleAfter = 5 * time.Minute

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("driver_locations")}
}

// Upsert stores the latest position for a driver, one document per driver.
func (s *Store) Upsert(ctx context.Context, loc models.DriverLocation) error {
	loc.UpdatedAt = time.Now().UTC()

	filter := bson.M{"driver_id": loc.DriverID}
	update := bson.M{"$set": bson.M{
		"driver_id":  loc.DriverID,
		"lat":        loc.Lat,
		"lng":        loc.Lng,
		"heading":    loc.Heading,
		"on_trip":    loc.OnTrip,
		"updated_at": loc.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Active returns positions reported within the freshness window.
func (s *Store) Active(ctx context.Context) ([]models.DriverLocation, error) {
	cutoff := time.Now().UTC().Add(-staleAfter)

	cur, err := s.c.Find(ctx, bson.M{"updated_at": bson.M{"$gte": cutoff}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var locs []models.DriverLocation
	if err := cur.All(ctx, &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

// GetByDriver loads the latest position for one driver.
func (s *Store) GetByDriver(ctx context.Context, driverID primitive.ObjectID) (*models.DriverLocation, error) {
	var loc models.DriverLocation
	if err := s.c.FindOne(ctx, bson.M{"driver_id": driverID}).Decode(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}
