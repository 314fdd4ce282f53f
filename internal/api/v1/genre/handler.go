package genre

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sonalirv01/moviesdb/internal/models"
	"github.com/sonalirv01/moviesdb/internal/services"
	"github.com/sonalirv01/moviesdb/internal/utils"
)

// ListGenres returns all genres, optionally filtered by a search term.
func ListGenres(c *gin.Context) {
	genres, err := services.FindGenres(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving genres", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

// CreateGenre creates a new genre with a client-supplied public id.
func CreateGenre(c *gin.Context) {
	var input CreateGenreRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	genre := &models.Genre{
		GenreID: input.GenreID,
		Genre:   input.Genre,
	}

	if err := services.CreateGenre(genre); err != nil {
		if errors.Is(err, services.ErrGenreExists) {
			c.JSON(http.StatusConflict, utils.NewMessageResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error creating genre", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Genre created successfully",
		"genre":   genre,
	})
}

// GetGenre returns a single genre by public id.
func GetGenre(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid genre ID format"))
		return
	}

	genre, err := services.FindGenreByID(id)
	if err != nil {
		if errors.Is(err, services.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Genre not found with id %d", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving genre", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"genre": genre})
}

// UpdateGenre applies updates to a genre by public id.
func UpdateGenre(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid genre ID format"))
		return
	}

	var req UpdateGenreRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Update data cannot be empty"))
		return
	}

	genre, err := services.UpdateGenre(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Cannot update Genre with id=%d. Genre not found.", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error updating genre", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Genre updated successfully",
		"genre":   genre,
	})
}

// DeleteGenre removes a genre by public id.
func DeleteGenre(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid genre ID format"))
		return
	}

	genre, err := services.DeleteGenre(id)
	if err != nil {
		if errors.Is(err, services.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Cannot delete Genre with id=%d. Genre not found.", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Could not delete genre", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Genre deleted successfully",
		"genre":   genre,
	})
}
