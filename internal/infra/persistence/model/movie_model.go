package model

import (
	"time"
)

// MovieModel is the GORM-specific struct for the 'movies' table.
type MovieModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255);not null"`
	ReleaseDate time.Time `gorm:"type:timestamp"`
	Genre       string    `gorm:"type:varchar(50);not null"`
	Rating      float64   `gorm:"type:numeric(4,2);not null;default:0"`
	DirectorID  *int64    `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "movies"
}
