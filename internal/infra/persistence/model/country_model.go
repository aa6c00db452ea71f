package model

import (
	"time"
)

// CountryModel is the GORM-specific struct for the 'countries' table. The
// table is migrated alongside the others so production-origin lookups can
// land later without a schema change; no HTTP surface reads it yet.
type CountryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CountryName string `gorm:"type:varchar(255);not null"`
	Continent   string `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}
