package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// Staff roles. Hosts are the officers appointments are scheduled with;
// secretaries and reception triage appointments on a host's behalf.
const (
	RoleAdmin     = "admin"
	RoleHost      = "host"
	RoleSecretary = "secretary"
	RoleReception = "reception"
)

// ValidRole reports whether role is a recognised staff role.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHost, RoleSecretary, RoleReception:
		return true
	}
	return false
}

// User models an authenticated staff member.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OfficeMembership grants a user a role at an office. The lifecycle engine
// consults memberships through the Authorizer port and never mutates them.
type OfficeMembership struct {
	UserID   string `json:"user_id" bson:"user_id"`
	OfficeID string `json:"office_id" bson:"office_id"`
	Role     string `json:"role" bson:"role"`
}
