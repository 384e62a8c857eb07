// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the system.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReviewer Role = "reviewer"
	RoleEditor   Role = "editor"
)

// User represents a CMS user. Workflow routing depends on the staff and
// publish flags: revision requests fan out to active staff members who
// hold the publish permission.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	IsStaff      bool      `json:"is_staff"`
	IsActive     bool      `json:"is_active"`
	CanPublish   bool      `json:"can_publish"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Name returns the display name, falling back to the email address.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}
