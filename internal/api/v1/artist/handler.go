package artist

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/sonalirv01/moviesdb/internal/models"
	"github.com/sonalirv01/moviesdb/internal/services"
	"github.com/sonalirv01/moviesdb/internal/utils"
)

// ListArtists returns a page of artists, optionally filtered by a search
// term or a "first last" name.
func ListArtists(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	artists, err := services.FindArtists(services.ArtistListQuery{
		Search: c.Query("search"),
		Name:   c.Query("name"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving artists", err))
		return
	}

	c.JSON(http.StatusOK, artists)
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags artist
// @Accept  json
// @Produce  json
// @Param   input     body   CreateArtistRequest  true  "Artist Input"
// @Success 201 {object} models.Artist
// @Failure 400 {object} utils.MessageResponse
// @Failure 409 {object} utils.MessageResponse
// @Router /artists [post]
func CreateArtist(c *gin.Context) {
	var input CreateArtistRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	artist := &models.Artist{
		ArtistID:   input.ArtistID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		WikiURL:    input.WikiURL,
		ProfileURL: input.ProfileURL,
		Movies:     input.Movies,
	}

	if err := services.CreateArtist(artist); err != nil {
		if errors.Is(err, services.ErrArtistExists) {
			c.JSON(http.StatusConflict, utils.NewMessageResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error creating artist", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Artist created successfully",
		"artist":  artist,
	})
}

// GetArtist returns a single artist by public id.
func GetArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid artist ID format"))
		return
	}

	artist, err := services.FindArtistByID(id)
	if err != nil {
		if errors.Is(err, services.ErrArtistNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Artist not found with id %d", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving artist", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// UpdateArtist applies updates to an artist by public id.
func UpdateArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid artist ID format"))
		return
	}

	var req UpdateArtistRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.WikiURL != nil {
		updates["wiki_url"] = *req.WikiURL
	}
	if req.ProfileURL != nil {
		updates["profile_url"] = *req.ProfileURL
	}
	if req.Movies != nil {
		updates["movies"] = datatypes.NewJSONSlice(*req.Movies)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Update data cannot be empty"))
		return
	}

	artist, err := services.UpdateArtist(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrArtistNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Cannot update Artist with id=%d. Artist not found.", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error updating artist", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist updated successfully",
		"artist":  artist,
	})
}

// DeleteArtist removes an artist by public id.
func DeleteArtist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid artist ID format"))
		return
	}

	artist, err := services.DeleteArtist(id)
	if err != nil {
		if errors.Is(err, services.ErrArtistNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("Cannot delete Artist with id=%d. Artist not found.", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Could not delete artist", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist deleted successfully",
		"artist":  artist,
	})
}
