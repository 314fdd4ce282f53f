package models

import (
	"time"

	"gorm.io/datatypes"
)

// Theatre identifies where a show runs.
type Theatre struct {
	City string `json:"city"`
	Name string `json:"name"`
}

// Show is a single screening embedded in a movie document.
type Show struct {
	Theatre        Theatre `json:"theatre"`
	Language       string  `json:"language"`
	ShowTiming     string  `json:"show_timing"`
	UnitPrice      float64 `json:"unit_price"`
	AvailableSeats int     `json:"available_seats"`
}

// Movie is a catalog entry addressed by its public numeric MovieID.
// Genres and Artists are stored denormalized, the way the catalog
// documents carried them.
type Movie struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MovieID       int     `gorm:"uniqueIndex;not null" json:"movieid"`
	Title         string  `gorm:"not null" json:"title"`
	Published     bool    `json:"published"`
	Released      bool    `json:"released"`
	PosterURL     string  `json:"poster_url"`
	ReleaseDate   string  `json:"release_date"`
	PublishDate   string  `json:"publish_date"`
	Duration      int     `json:"duration"`
	CriticsRating float64 `json:"critics_rating"`
	TrailerURL    string  `json:"trailer_url"`
	WikiURL       string  `json:"wiki_url"`
	Storyline     string  `json:"storyline"`

	Artists datatypes.JSONSlice[string] `json:"artists"`
	Genres  datatypes.JSONSlice[string] `json:"genres"`
	Shows   datatypes.JSONSlice[Show]   `json:"shows"`
}

func (Movie) TableName() string {
	return "movies"
}
