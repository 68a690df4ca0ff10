package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is owned by exactly one user. Deleting a company cascades to
// its employees, offices and vehicles through their CompanyID
// constraints.
type Company struct {
	// ID is the unique identifier for the company.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Name is the company's name.
	Name string `gorm:"not null"`
	// Address is optional.
	Address string
	// OwnerID references the owning user. The unique index enforces
	// one company per owner at the storage level.
	OwnerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyUpdate represents the company fields an owner may change.
type CompanyUpdate struct {
	ID      uuid.UUID
	Name    *string
	Address *string
}

// Employee links a user to a company. The unique index on UserID
// enforces at most one employer per user.
type Employee struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyID uuid.UUID  `gorm:"type:uuid;index;not null"`
	OfficeID  *uuid.UUID `gorm:"type:uuid"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Office  *Office  `gorm:"foreignKey:OfficeID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
