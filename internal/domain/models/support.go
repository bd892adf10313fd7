// internal/domain/models/support.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportMessage is one message in a support conversation. Messages from the
// mobile clients have FromAdmin=false; console replies set it true.
type SupportMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender    string             `bson:"sender" json:"sender"` // email of the user or driver
	FromAdmin bool               `bson:"from_admin" json:"from_admin"`
	AdminName string             `bson:"admin_name,omitempty" json:"admin_name,omitempty"`
	Body      string             `bson:"body" json:"body"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ContactMessage is a public contact-form submission, recorded so the console
// can list inbound mail alongside support conversations.
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string             `bson:"message" json:"message"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
