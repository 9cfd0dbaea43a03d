package domain

import "time"

// Citizen is the identity of the appointment requester. Citizens are
// referenced by appointments but owned by the record store; repeated
// appointment creation reuses an existing citizen matched by email.
type Citizen struct {
	ID        string    `json:"id" bson:"_id"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
