package models

import (
	"time"

	"gorm.io/datatypes"
)

// Artist is a catalog entry addressed by its public numeric ArtistID.
type Artist struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ArtistID   int    `gorm:"uniqueIndex;not null" json:"artistid"`
	FirstName  string `gorm:"not null" json:"first_name"`
	LastName   string `gorm:"not null" json:"last_name"`
	WikiURL    string `json:"wiki_url"`
	ProfileURL string `json:"profile_url"`

	Movies datatypes.JSONSlice[string] `json:"movies"`
}

func (Artist) TableName() string {
	return "artists"
}
