// Package models defines the domain entities of the business directory
// and their relational mapping. The same structs serve as GORM models;
// foreign-key actions (CASCADE, SET NULL) are declared on the
// association fields so the storage layer enforces referential
// integrity even when application-level checks race.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. A user may own at most one company
// (Company.OwnerID is unique) and may be employed by at most one
// company (Employee.UserID is unique).
type User struct {
	// ID is the unique identifier for the user.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// FirstName is the user's given name.
	FirstName string `gorm:"not null"`
	// LastName is the user's family name.
	LastName string `gorm:"not null"`
	// Email is the unique login identifier.
	Email string `gorm:"uniqueIndex;not null"`
	// PasswordHash holds the bcrypt hash of the user's password.
	PasswordHash string `gorm:"not null"`
	// CreatedAt records when the user registered.
	CreatedAt time.Time
	// UpdatedAt records the last modification time.
	UpdatedAt time.Time
}

// UserUpdate represents the user fields that can be changed after
// registration. Pointer types allow partial updates; email and
// password changes go through dedicated operations.
type UserUpdate struct {
	ID        uuid.UUID
	FirstName *string
	LastName  *string
}
