package genre_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sonalirv01/moviesdb/internal/api/v1/genre"
	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/models"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.Genre{})
	if err := db.AutoMigrate(&models.Genre{}); err != nil {
		panic("failed to migrate database")
	}
	db.Exec("DELETE FROM genres")

	database.DB = db
	database.RedisClient = nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	genre.RegisterRoutes(r.Group(""))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenreCRUD(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	// Missing name
	w := doJSON(r, http.MethodPost, "/genres", gin.H{"genreid": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/genres", gin.H{"genreid": 1, "genre": "Comedy"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate public id
	w = doJSON(r, http.MethodPost, "/genres", gin.H{"genreid": 1, "genre": "Horror"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/genres", gin.H{"genreid": 2, "genre": "Drama"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/genres/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Comedy")

	w = doJSON(r, http.MethodGet, "/genres/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/genres/1", gin.H{"genre": "Dark Comedy"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dark Comedy")

	w = doJSON(r, http.MethodDelete, "/genres/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodDelete, "/genres/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListGenresSearch(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	doJSON(r, http.MethodPost, "/genres", gin.H{"genreid": 1, "genre": "Comedy"})
	doJSON(r, http.MethodPost, "/genres", gin.H{"genreid": 2, "genre": "Drama"})
	doJSON(r, http.MethodPost, "/genres", gin.H{"genreid": 3, "genre": "Romantic Comedy"})

	w := doJSON(r, http.MethodGet, "/genres?search=comedy", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Genres []models.Genre `json:"genres"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Genres, 2)

	w = doJSON(r, http.MethodGet, "/genres", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Genres, 3)
}

func TestListGenresEmpty(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	// An empty result set renders as [], not null
	w := doJSON(r, http.MethodGet, "/genres", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"genres":[]}`, strings.TrimSpace(w.Body.String()))
}
