package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/models"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrMovieExists   = errors.New("movie with this id already exists")
)

// MovieListQuery carries the optional list filters.
type MovieListQuery struct {
	Status    string
	Title     string
	Genres    []string
	Artists   []string
	StartDate string
	EndDate   string
}

// FindMovies retrieves movies matching the filters. Scalar filters run in
// the store; membership filters on the denormalized genre/artist lists are
// applied to the result set.
func FindMovies(q MovieListQuery) ([]models.Movie, error) {
	db := database.DB.Model(&models.Movie{})

	switch strings.ToLower(q.Status) {
	case "published":
		db = db.Where("published = ?", true)
	case "released":
		db = db.Where("released = ?", true)
	}

	if q.Title != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.Title)+"%")
	}

	if q.StartDate != "" {
		db = db.Where("release_date >= ?", q.StartDate)
	}
	if q.EndDate != "" {
		db = db.Where("release_date <= ?", q.EndDate)
	}

	movies := make([]models.Movie, 0)
	if err := db.Find(&movies).Error; err != nil {
		return nil, err
	}

	if len(q.Genres) > 0 {
		movies = filterByMembership(movies, q.Genres, func(m models.Movie) []string { return m.Genres })
	}
	if len(q.Artists) > 0 {
		movies = filterByMembership(movies, q.Artists, func(m models.Movie) []string { return m.Artists })
	}

	return movies, nil
}

func filterByMembership(movies []models.Movie, wanted []string, field func(models.Movie) []string) []models.Movie {
	wantedSet := make(map[string]struct{}, len(wanted))
	for _, w := range wanted {
		wantedSet[w] = struct{}{}
	}

	filtered := movies[:0]
	for _, m := range movies {
		for _, v := range field(m) {
			if _, ok := wantedSet[v]; ok {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered
}

func CreateMovie(movie *models.Movie) error {
	if err := database.DB.Create(movie).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrMovieExists
		}
		return err
	}
	return nil
}

func FindMovieByID(movieID int) (*models.Movie, error) {
	var movie models.Movie
	if err := database.DB.Where("movie_id = ?", movieID).First(&movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func UpdateMovie(movieID int, updates map[string]interface{}) (*models.Movie, error) {
	movie, err := FindMovieByID(movieID)
	if err != nil {
		return nil, err
	}

	delete(updates, "movie_id")
	delete(updates, "movieid")
	if err := database.DB.Model(movie).Updates(updates).Error; err != nil {
		return nil, err
	}

	return FindMovieByID(movieID)
}

func DeleteMovie(movieID int) (*models.Movie, error) {
	movie, err := FindMovieByID(movieID)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Delete(movie).Error; err != nil {
		return nil, err
	}
	return movie, nil
}

// MovieShows returns the shows embedded in a movie.
func MovieShows(movieID int) ([]models.Show, error) {
	movie, err := FindMovieByID(movieID)
	if err != nil {
		return nil, err
	}
	return movie.Shows, nil
}
