// internal/domain/models/payout.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payout statuses. An admin flips a request between these two by hand;
// there is no settlement integration.
const (
	PayoutPending = "pending"
	PayoutPaid    = "paid"
)

// PayoutRequest is a driver's request to be paid out accumulated earnings.
type PayoutRequest struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DriverID primitive.ObjectID `bson:"driver_id" json:"driver_id"`
	Amount   float64            `bson:"amount" json:"amount"`
	Status   string             `bson:"status" json:"status"` // pending | paid
	Note     string             `bson:"note,omitempty" json:"note,omitempty"`

	PaidAt    *time.Time `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
