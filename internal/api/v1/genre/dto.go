package genre

// CreateGenreRequest defines the genre creation body.
type CreateGenreRequest struct {
	GenreID int    `json:"genreid" binding:"required"`
	Genre   string `json:"genre" binding:"required"`
}

// UpdateGenreRequest defines the mutable genre fields.
type UpdateGenreRequest struct {
	Genre *string `json:"genre,omitempty"`
}
