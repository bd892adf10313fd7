package driverstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/towdeskhq/towdesk/internal/app/system/normalize"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const listLimit = 200

var (
	// ErrDuplicateEmail is returned when creating a driver with an email
	// that already exists.
	ErrDuplicateEmail = errors.New("a driver with this email already exists")
	errBadStatus      = errors.New(`status must be "pending"|"approved"|"suspended"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("drivers")}
}

// GetByID loads a driver by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	var d models.Driver
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns up to listLimit drivers, newest first.
func (s *Store) List(ctx context.Context) ([]models.Driver, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var drivers []models.Driver
	if err := cur.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// Create inserts a new driver after normalizing fields and hashing the
// temporary password. New drivers start pending until approved.
func (s *Store) Create(ctx context.Context, d models.Driver, tempPassword string) (models.Driver, error) {
	d.ID = primitive.NewObjectID()
	d.FullName = normalize.Name(d.FullName)
	d.FullNameCI = text.Fold(d.FullName)
	d.Email = normalize.Email(d.Email)
	d.Phone = normalize.Phone(d.Phone)
	if d.Status == "" {
		d.Status = models.DriverPending
	}

	switch d.Status {
	case models.DriverPending, models.DriverApproved, models.DriverSuspended:
	default:
		return models.Driver{}, errBadStatus
	}

	if tempPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.Driver{}, err
		}
		d.PasswordHash = string(hash)
	}

	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Driver{}, ErrDuplicateEmail
		}
		return models.Driver{}, err
	}
	return d, nil
}

// SetStatus moves a driver between pending, approved, and suspended.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	status = normalize.Status(status)
	switch status {
	case models.DriverPending, models.DriverApproved, models.DriverSuspended:
	default:
		return errBadStatus
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// Delete removes a driver account. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByStatus returns the number of drivers with the given status.
func (s *Store) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": normalize.Status(status)})
}
