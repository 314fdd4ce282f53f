package movie

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/sonalirv01/moviesdb/internal/models"
	"github.com/sonalirv01/moviesdb/internal/services"
	"github.com/sonalirv01/moviesdb/internal/utils"
)

// ListMovies returns movies matching the optional query filters: status
// (published/released), title, comma-separated genre and artist lists,
// and a release date range.
func ListMovies(c *gin.Context) {
	movies, err := services.FindMovies(services.MovieListQuery{
		Status:    c.Query("status"),
		Title:     c.Query("title"),
		Genres:    splitList(c.Query("genres")),
		Artists:   splitList(c.Query("artists")),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving movies", err))
		return
	}

	c.JSON(http.StatusOK, MovieListResponse{
		Movies: movies,
		Page:   1,
		Limit:  len(movies),
		Total:  len(movies),
	})
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// CreateMovie creates a new movie with a client-supplied public id.
func CreateMovie(c *gin.Context) {
	var input CreateMovieRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	movie := &models.Movie{
		MovieID:       input.MovieID,
		Title:         input.Title,
		Published:     input.Published,
		Released:      input.Released,
		PosterURL:     input.PosterURL,
		ReleaseDate:   input.ReleaseDate,
		PublishDate:   input.PublishDate,
		Duration:      input.Duration,
		CriticsRating: input.CriticsRating,
		TrailerURL:    input.TrailerURL,
		WikiURL:       input.WikiURL,
		Storyline:     input.Storyline,
		Artists:       input.Artists,
		Genres:        input.Genres,
		Shows:         input.Shows,
	}

	if err := services.CreateMovie(movie); err != nil {
		if errors.Is(err, services.ErrMovieExists) {
			c.JSON(http.StatusConflict, utils.NewMessageResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error creating movie", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Movie created successfully",
		"movie":   movie,
	})
}

// GetMovie returns a single movie by public id.
func GetMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid movie ID format"))
		return
	}

	movie, err := services.FindMovieByID(id)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Movie not found with id %d", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving movie", err))
		return
	}

	c.JSON(http.StatusOK, movie)
}

// GetMovieShows returns the shows embedded in a movie.
func GetMovieShows(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid movie ID format"))
		return
	}

	shows, err := services.MovieShows(id)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Movie not found with id %d", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving shows", err))
		return
	}

	if shows == nil {
		shows = []models.Show{}
	}
	c.JSON(http.StatusOK, shows)
}

// UpdateMovie applies updates to a movie by public id.
func UpdateMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid movie ID format"))
		return
	}

	var req UpdateMovieRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := movieUpdates(req)
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Update data cannot be empty"))
		return
	}

	movie, err := services.UpdateMovie(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Cannot update Movie with id=%d. Movie not found.", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error updating movie", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movie updated successfully",
		"movie":   movie,
	})
}

func movieUpdates(req UpdateMovieRequest) map[string]interface{} {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	if req.Released != nil {
		updates["released"] = *req.Released
	}
	if req.PosterURL != nil {
		updates["poster_url"] = *req.PosterURL
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.PublishDate != nil {
		updates["publish_date"] = *req.PublishDate
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.CriticsRating != nil {
		updates["critics_rating"] = *req.CriticsRating
	}
	if req.TrailerURL != nil {
		updates["trailer_url"] = *req.TrailerURL
	}
	if req.WikiURL != nil {
		updates["wiki_url"] = *req.WikiURL
	}
	if req.Storyline != nil {
		updates["storyline"] = *req.Storyline
	}
	if req.Artists != nil {
		updates["artists"] = datatypes.NewJSONSlice(*req.Artists)
	}
	if req.Genres != nil {
		updates["genres"] = datatypes.NewJSONSlice(*req.Genres)
	}
	if req.Shows != nil {
		updates["shows"] = datatypes.NewJSONSlice(*req.Shows)
	}
	return updates
}

// DeleteMovie removes a movie by public id.
func DeleteMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid movie ID format"))
		return
	}

	movie, err := services.DeleteMovie(id)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Cannot delete Movie with id=%d. Movie not found.", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Could not delete movie", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movie deleted successfully",
		"movie":   movie,
	})
}
