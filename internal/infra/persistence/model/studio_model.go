package model

import (
	"time"
)

// StudioModel is the GORM-specific struct for the 'studios' table. The
// unique index on studio_name backs the name-uniqueness rule; the pre-check
// in the service only covers the friendly path.
type StudioModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	StudioName  string           `gorm:"type:varchar(255);not null;uniqueIndex:idx_studios_studio_name"`
	FoundedYear int              `gorm:"not null;default:0"`
	Directors   []*DirectorModel `gorm:"foreignKey:StudioID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudioModel) TableName() string {
	return "studios"
}
