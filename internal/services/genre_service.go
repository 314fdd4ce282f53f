package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/models"
)

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrGenreExists   = errors.New("genre with this id already exists")
)

// FindGenres retrieves all genres, optionally filtered by a name search.
func FindGenres(search string) ([]models.Genre, error) {
	db := database.DB.Model(&models.Genre{})
	if search != "" {
		db = db.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	genres := make([]models.Genre, 0)
	if err := db.Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func CreateGenre(genre *models.Genre) error {
	if err := database.DB.Create(genre).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrGenreExists
		}
		return err
	}
	return nil
}

func FindGenreByID(genreID int) (*models.Genre, error) {
	var genre models.Genre
	if err := database.DB.Where("genre_id = ?", genreID).First(&genre).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func UpdateGenre(genreID int, updates map[string]interface{}) (*models.Genre, error) {
	genre, err := FindGenreByID(genreID)
	if err != nil {
		return nil, err
	}

	delete(updates, "genre_id")
	delete(updates, "genreid")
	if err := database.DB.Model(genre).Updates(updates).Error; err != nil {
		return nil, err
	}

	return FindGenreByID(genreID)
}

func DeleteGenre(genreID int) (*models.Genre, error) {
	genre, err := FindGenreByID(genreID)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Delete(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}
