// internal/domain/models/driver.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver statuses. A driver must be approved before trips are offered to them.
const (
	DriverPending   = "pending"
	DriverApproved  = "approved"
	DriverSuspended = "suspended"
)

// Driver is a tow-truck operator account.
type Driver struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status     string             `bson:"status" json:"status"` // pending | approved | suspended

	LicenseNumber string `bson:"license_number,omitempty" json:"license_number,omitempty"`
	TruckMake     string `bson:"truck_make,omitempty" json:"truck_make,omitempty"`
	TruckModel    string `bson:"truck_model,omitempty" json:"truck_model,omitempty"`
	LicensePlate  string `bson:"license_plate,omitempty" json:"license_plate,omitempty"`

	// PasswordHash holds the bcrypt hash of the temporary password set when an
	// admin creates the account. The driver app replaces it on first login.
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	Rating        float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	TotalTrips    int     `bson:"total_trips,omitempty" json:"total_trips,omitempty"`
	TotalEarnings float64 `bson:"total_earnings,omitempty" json:"total_earnings,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
