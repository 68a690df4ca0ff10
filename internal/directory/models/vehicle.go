package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a company asset, optionally parked at an office and
// optionally driven by an employee of the same company. When both
// office and driver are set, the driver must be assigned to that exact
// office.
type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name              string `gorm:"not null"`
	Model             string `gorm:"not null"`
	LicencePlate      string `gorm:"not null"`
	YearOfManufacture int    `gorm:"not null"`

	OfficeID *uuid.UUID `gorm:"type:uuid"`
	// DriverID references the driving user, not the employee row, so
	// the assignment survives employee record rewrites.
	DriverID *uuid.UUID `gorm:"type:uuid"`

	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Office  *Office  `gorm:"foreignKey:OfficeID;constraint:OnDelete:SET NULL"`
	Driver  *User    `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleUpdate carries the full replacement state for a vehicle.
type VehicleUpdate struct {
	ID                uuid.UUID
	Name              string
	Model             string
	LicencePlate      string
	YearOfManufacture int
	OfficeID          *uuid.UUID
	DriverID          *uuid.UUID
}
