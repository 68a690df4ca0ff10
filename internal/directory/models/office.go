package models

import (
	"time"

	"github.com/google/uuid"
)

// Office is a physical location of a company, tied to a
// country/region/city triple. The triple must be internally
// consistent: the region belongs to the country and the city belongs
// to the region.
type Office struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null"`
	// Name is the office name.
	Name string `gorm:"not null"`
	// Address is the street address.
	Address string `gorm:"not null"`

	CountryID *uuid.UUID `gorm:"type:uuid"`
	RegionID  *uuid.UUID `gorm:"type:uuid"`
	CityID    *uuid.UUID `gorm:"type:uuid"`

	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Country *Country `gorm:"foreignKey:CountryID;constraint:OnDelete:SET NULL"`
	Region  *Region  `gorm:"foreignKey:RegionID;constraint:OnDelete:SET NULL"`
	City    *City    `gorm:"foreignKey:CityID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OfficeUpdate carries the full replacement state for an office. PUT
// semantics: every field is validated as on create.
type OfficeUpdate struct {
	ID        uuid.UUID
	Name      string
	Address   string
	CountryID uuid.UUID
	RegionID  uuid.UUID
	CityID    uuid.UUID
}
