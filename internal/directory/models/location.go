package models

import (
	"github.com/google/uuid"
)

// Country, Region and City form the static reference hierarchy
// (Country 1-* Region 1-* City). The application treats them as
// read-only; they are populated once by the seed tool.

type Country struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}

type Region struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CountryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Country   *Country  `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

type City struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null"`
	RegionID uuid.UUID `gorm:"type:uuid;index;not null"`
	Region   *Region   `gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
}
