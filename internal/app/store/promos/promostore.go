package promostore

import (
	"context"
	"errors"
	"math"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/towdeskhq/towdesk/internal/app/system/normalize"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrDuplicateCode is returned when a promo code already exists.
	ErrDuplicateCode = errors.New("a promo code with this code already exists")

	errBadType    = errors.New(`type must be "percent" or "flat"`)
	errBadPercent = errors.New("percent discount must be greater than 0 and at most 100")
	errBadAmount  = errors.New("flat discount must be greater than 0")
	errBadLimits  = errors.New("redemption limits must not be negative")
	errNoCode     = errors.New("code is required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("promo_codes")}
}

// GetByID loads a promo code by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PromoCode, error) {
	var p models.PromoCode
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all promo codes, newest first.
func (s *Store) List(ctx context.Context) ([]models.PromoCode, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var promos []models.PromoCode
	if err := cur.All(ctx, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// Create inserts a promo code after normalizing and validating it. The
// discount rules mirror the form's client-side checks so a bad value can
// never reach the collection through any path.
func (s *Store) Create(ctx context.Context, p models.PromoCode) (models.PromoCode, error) {
	p.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	var err error
	if p, err = normalizeAndValidate(p); err != nil {
		return models.PromoCode{}, err
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.PromoCode{}, ErrDuplicateCode
		}
		return models.PromoCode{}, err
	}
	return p, nil
}

// Update replaces the editable fields of a promo code.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.PromoCode) error {
	var err error
	if p, err = normalizeAndValidate(p); err != nil {
		return err
	}

	set := bson.M{
		"code":            p.Code,
		"type":            p.Type,
		"percent_off":     p.PercentOff,
		"amount_off":      p.AmountOff,
		"max_redemptions": p.MaxRedemptions,
		"per_user_limit":  p.PerUserLimit,
		"min_subtotal":    p.MinSubtotal,
		"active":          p.Active,
		"expires_at":      p.ExpiresAt,
		"updated_at":      time.Now().UTC(),
	}
	_, err = s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil && wafflemongo.IsDup(err) {
		return ErrDuplicateCode
	}
	return err
}

// Delete removes a promo code. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func normalizeAndValidate(p models.PromoCode) (models.PromoCode, error) {
	p.Code = normalize.PromoCode(p.Code)
	if p.Code == "" {
		return p, errNoCode
	}

	switch p.Type {
	case models.PromoPercent:
		p.PercentOff = Round2(p.PercentOff)
		p.AmountOff = 0
		if p.PercentOff <= 0 || p.PercentOff > 100 {
			return p, errBadPercent
		}
	case models.PromoFlat:
		p.AmountOff = Round2(p.AmountOff)
		p.PercentOff = 0
		if p.AmountOff <= 0 {
			return p, errBadAmount
		}
	default:
		return p, errBadType
	}

	if p.MaxRedemptions < 0 || p.PerUserLimit < 0 || p.MinSubtotal < 0 {
		return p, errBadLimits
	}
	return p, nil
}

// IsValidationError reports whether err is one of the discount-rule
// rejections, as opposed to an infrastructure failure.
func IsValidationError(err error) bool {
	for _, e := range []error{errNoCode, errBadType, errBadPercent, errBadAmount, errBadLimits} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// Round2 rounds to two decimal places; discounts are stored that way.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
