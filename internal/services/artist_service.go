package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/models"
)

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrArtistExists   = errors.New("artist with this id already exists")
)

// ArtistListQuery carries the optional list filters.
type ArtistListQuery struct {
	Search string
	Name   string
	Page   int
	Limit  int
}

// FindArtists retrieves a page of artists. Search matches either name
// field, Name matches "first last" positionally.
func FindArtists(q ArtistListQuery) ([]models.Artist, error) {
	db := database.DB.Model(&models.Artist{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}

	if q.Name != "" {
		first, last, _ := strings.Cut(strings.TrimSpace(q.Name), " ")
		if first != "" {
			db = db.Where("LOWER(first_name) LIKE ?", "%"+strings.ToLower(first)+"%")
		}
		if last != "" {
			db = db.Where("LOWER(last_name) LIKE ?", "%"+strings.ToLower(last)+"%")
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 5
	}

	artists := make([]models.Artist, 0)
	if err := db.Offset((page - 1) * limit).Limit(limit).Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func CreateArtist(artist *models.Artist) error {
	if err := database.DB.Create(artist).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrArtistExists
		}
		return err
	}
	return nil
}

func FindArtistByID(artistID int) (*models.Artist, error) {
	var artist models.Artist
	if err := database.DB.Where("artist_id = ?", artistID).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func UpdateArtist(artistID int, updates map[string]interface{}) (*models.Artist, error) {
	artist, err := FindArtistByID(artistID)
	if err != nil {
		return nil, err
	}

	delete(updates, "artist_id")
	delete(updates, "artistid")
	if err := database.DB.Model(artist).Updates(updates).Error; err != nil {
		return nil, err
	}

	return FindArtistByID(artistID)
}

func DeleteArtist(artistID int) (*models.Artist, error) {
	artist, err := FindArtistByID(artistID)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Delete(artist).Error; err != nil {
		return nil, err
	}
	return artist, nil
}
