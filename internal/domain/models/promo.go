// internal/domain/models/promo.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Promo discount types.
const (
	PromoPercent = "percent"
	PromoFlat    = "flat"
)

// PromoCode is a discount code record. The schema carries redemption limits
// (MaxRedemptions, PerUserLimit, MinSubtotal) but no redemption path in this
// system enforces them; they are persisted for the booking clients.
type PromoCode struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code string             `bson:"code" json:"code"` // stored uppercased
	Type string             `bson:"type" json:"type"` // percent | flat

	// PercentOff is used when Type is "percent"; stored rounded to two
	// decimal places, always in (0,100].
	PercentOff float64 `bson:"percent_off,omitempty" json:"percent_off,omitempty"`
	// AmountOff is used when Type is "flat"; always positive.
	AmountOff float64 `bson:"amount_off,omitempty" json:"amount_off,omitempty"`

	MaxRedemptions int     `bson:"max_redemptions,omitempty" json:"max_redemptions,omitempty"`
	PerUserLimit   int     `bson:"per_user_limit,omitempty" json:"per_user_limit,omitempty"`
	MinSubtotal    float64 `bson:"min_subtotal,omitempty" json:"min_subtotal,omitempty"`

	Active    bool       `bson:"active" json:"active"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
