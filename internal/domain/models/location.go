// internal/domain/models/location.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriverLocation is the latest reported position of a driver. The driver app
// upserts one document per driver; the live-activity screen reads them all.
type DriverLocation struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DriverID primitive.ObjectID `bson:"driver_id" json:"driver_id"`
	Lat      float64            `bson:"lat" json:"lat"`
	Lng      float64            `bson:"lng" json:"lng"`
	Heading  float64            `bson:"heading,omitempty" json:"heading,omitempty"`
	OnTrip   bool               `bson:"on_trip" json:"on_trip"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
