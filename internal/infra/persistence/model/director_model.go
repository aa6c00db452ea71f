// Package model holds the GORM-specific structs mirroring the database
// tables. Domain entities never carry GORM tags; the repositories translate
// between the two.
package model

import (
	"time"
)

// DirectorModel is the GORM-specific struct for the 'directors' table.
type DirectorModel struct {
	ID         int64         `gorm:"primaryKey;autoIncrement"`
	FirstName  string        `gorm:"type:varchar(255);not null"`
	LastName   string        `gorm:"type:varchar(255);not null"`
	BirthDate  time.Time     `gorm:"type:date"`
	OscarCount int           `gorm:"not null;default:0"`
	StudioID   *int64        `gorm:"index"`
	Movies     []*MovieModel `gorm:"foreignKey:DirectorID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DirectorModel) TableName() string {
	return "directors"
}
