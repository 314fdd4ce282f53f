package models

import "time"

// Genre is a catalog entry addressed by its public numeric GenreID.
type Genre struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GenreID int    `gorm:"uniqueIndex;not null" json:"genreid"`
	Genre   string `gorm:"not null" json:"genre"`
}

func (Genre) TableName() string {
	return "genres"
}
