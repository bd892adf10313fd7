// internal/domain/models/trip.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip statuses, in lifecycle order.
const (
	TripRequested = "requested"
	TripAssigned  = "assigned"
	TripEnRoute   = "enroute"
	TripCompleted = "completed"
	TripCancelled = "cancelled"
)

// Trip is a recovery-trip request and its history. The mobile clients own the
// lifecycle; the console renders trips and their derived figures.
type Trip struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	TripNumber string              `bson:"trip_number" json:"trip_number"`
	UserID     primitive.ObjectID  `bson:"user_id" json:"user_id"`
	DriverID   *primitive.ObjectID `bson:"driver_id,omitempty" json:"driver_id,omitempty"`
	Status     string              `bson:"status" json:"status"`

	VehicleMake  string `bson:"vehicle_make,omitempty" json:"vehicle_make,omitempty"`
	VehicleModel string `bson:"vehicle_model,omitempty" json:"vehicle_model,omitempty"`

	PickupAddress  string  `bson:"pickup_address" json:"pickup_address"`
	PickupLat      float64 `bson:"pickup_lat,omitempty" json:"pickup_lat,omitempty"`
	PickupLng      float64 `bson:"pickup_lng,omitempty" json:"pickup_lng,omitempty"`
	DropoffAddress string  `bson:"dropoff_address,omitempty" json:"dropoff_address,omitempty"`
	DropoffLat     float64 `bson:"dropoff_lat,omitempty" json:"dropoff_lat,omitempty"`
	DropoffLng     float64 `bson:"dropoff_lng,omitempty" json:"dropoff_lng,omitempty"`

	// Amount is the total charged for the trip. Commission and driver
	// earnings are derived at render time and never persisted.
	Amount    float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	PromoCode string  `bson:"promo_code,omitempty" json:"promo_code,omitempty"`

	RequestedAt time.Time  `bson:"requested_at" json:"requested_at"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
