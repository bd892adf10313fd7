// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification audiences.
const (
	AudienceUsers   = "users"
	AudienceDrivers = "drivers"
	AudienceAll     = "all"
)

// Notification is an announcement composed in the console. Delivery to
// devices is owned by the mobile backends; the record is the contract.
type Notification struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Body     string             `bson:"body" json:"body"`
	Audience string             `bson:"audience" json:"audience"` // users | drivers | all
	SentBy   string             `bson:"sent_by" json:"sent_by"`   // admin email

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
