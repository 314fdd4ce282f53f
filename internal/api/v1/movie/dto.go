package movie

import "github.com/sonalirv01/moviesdb/internal/models"

// CreateMovieRequest defines the movie creation body.
type CreateMovieRequest struct {
	MovieID       int           `json:"movieid" binding:"required"`
	Title         string        `json:"title" binding:"required"`
	Published     bool          `json:"published"`
	Released      bool          `json:"released"`
	PosterURL     string        `json:"poster_url"`
	ReleaseDate   string        `json:"release_date"`
	PublishDate   string        `json:"publish_date"`
	Duration      int           `json:"duration"`
	CriticsRating float64       `json:"critic_rating"`
	TrailerURL    string        `json:"trailer_url"`
	WikiURL       string        `json:"wiki_url"`
	Storyline     string        `json:"story_line"`
	Artists       []string      `json:"artists"`
	Genres        []string      `json:"genres"`
	Shows         []models.Show `json:"shows"`
}

// UpdateMovieRequest defines the mutable movie fields.
type UpdateMovieRequest struct {
	Title         *string        `json:"title,omitempty"`
	Published     *bool          `json:"published,omitempty"`
	Released      *bool          `json:"released,omitempty"`
	PosterURL     *string        `json:"poster_url,omitempty"`
	ReleaseDate   *string        `json:"release_date,omitempty"`
	PublishDate   *string        `json:"publish_date,omitempty"`
	Duration      *int           `json:"duration,omitempty"`
	CriticsRating *float64       `json:"critic_rating,omitempty"`
	TrailerURL    *string        `json:"trailer_url,omitempty"`
	WikiURL       *string        `json:"wiki_url,omitempty"`
	Storyline     *string        `json:"story_line,omitempty"`
	Artists       *[]string      `json:"artists,omitempty"`
	Genres        *[]string      `json:"genres,omitempty"`
	Shows         *[]models.Show `json:"shows,omitempty"`
}

// MovieListResponse wraps the movie listing.
type MovieListResponse struct {
	Movies []models.Movie `json:"movies"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Total  int            `json:"total"`
}
