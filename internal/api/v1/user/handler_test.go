package user_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sonalirv01/moviesdb/internal/api/v1/user"
	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/models"
)

func setupTestDB() {
	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{})
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic("failed to migrate database")
	}
	db.Exec("DELETE FROM users")

	database.DB = db
	database.RedisClient = nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	user.RegisterRoutes(r.Group(""))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func basicAuth(username, password string) map[string]string {
	return map[string]string{
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)),
	}
}

func TestSignUpLoginTokenLogoutFlow(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	// Sign up; username defaults to the lowercased first+last name
	w := doJSON(r, http.MethodPost, "/users", gin.H{
		"email_address": "a@b.com",
		"password":      "p",
		"first_name":    "A",
		"last_name":     "B",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		UserID     int    `json:"userid"`
		Username   string `json:"username"`
		IsLoggedIn bool   `json:"isLoggedIn"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.UserID)
	assert.Equal(t, "ab", created.Username)
	assert.False(t, created.IsLoggedIn)

	// The password hash must never appear in a response
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")

	// Login with basic credentials
	w = doJSON(r, http.MethodGet, "/users/login", nil, basicAuth("ab", "p"))
	assert.Equal(t, http.StatusOK, w.Code)

	token := w.Header().Get("access-token")
	assert.NotEmpty(t, token)

	var identity struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Email       string `json:"email"`
		IsLoggedIn  bool   `json:"isLoggedIn"`
		AccessToken string `json:"access-token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.True(t, identity.IsLoggedIn)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "ab", identity.Username)
	assert.Equal(t, "A", identity.FirstName)
	assert.Equal(t, "B", identity.LastName)
	assert.Equal(t, "a@b.com", identity.Email)
	assert.Equal(t, token, identity.AccessToken)

	// The token resolves back to the same identity, without echoing itself
	w = doJSON(r, http.MethodGet, "/users/token", nil, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)

	var resolved struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		AccessToken string `json:"access-token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.Equal(t, identity.ID, resolved.ID)
	assert.Equal(t, "ab", resolved.Username)
	assert.Empty(t, resolved.AccessToken)

	// Logout by session id
	w = doJSON(r, http.MethodPut, "/users/logout/"+identity.ID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The token no longer resolves and the session id no longer matches
	w = doJSON(r, http.MethodGet, "/users/token", nil, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/users/logout/"+identity.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignUpValidation(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	w := doJSON(r, http.MethodPost, "/users", gin.H{
		"email_address": "a@b.com",
		"first_name":    "A",
		"last_name":     "B",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignUpDuplicateUsername(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	body := gin.H{
		"email_address": "a@b.com",
		"password":      "p",
		"first_name":    "A",
		"last_name":     "B",
	}
	w := doJSON(r, http.MethodPost, "/users", body, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/users", body, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginErrors(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	doJSON(r, http.MethodPost, "/users", gin.H{
		"email_address": "a@b.com",
		"password":      "p",
		"first_name":    "A",
		"last_name":     "B",
	}, nil)

	// Missing header
	w := doJSON(r, http.MethodGet, "/users/login", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Header that decodes without a password
	w = doJSON(r, http.MethodGet, "/users/login", nil, map[string]string{
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte("ab")),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password and unknown username collapse to the same outcome
	w = doJSON(r, http.MethodGet, "/users/login", nil, basicAuth("ab", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/users/login", nil, basicAuth("nobody", "p"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	doJSON(r, http.MethodPost, "/users", gin.H{
		"email_address": "a@b.com",
		"password":      "p",
		"first_name":    "A",
		"last_name":     "B",
	}, nil)

	w := doJSON(r, http.MethodGet, "/users/login", nil, basicAuth("ab", "p"))
	assert.Equal(t, http.StatusOK, w.Code)
	firstToken := w.Header().Get("access-token")

	w = doJSON(r, http.MethodGet, "/users/login", nil, basicAuth("ab", "p"))
	assert.Equal(t, http.StatusOK, w.Code)
	secondToken := w.Header().Get("access-token")
	assert.NotEqual(t, firstToken, secondToken)

	w = doJSON(r, http.MethodGet, "/users/token", nil, map[string]string{"Authorization": "Bearer " + firstToken})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/users/token", nil, map[string]string{"Authorization": "Bearer " + secondToken})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUserByTokenMissing(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	w := doJSON(r, http.MethodGet, "/users/token", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserFlexibleIdentifier(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	doJSON(r, http.MethodPost, "/users", gin.H{
		"email_address": "a@b.com",
		"password":      "p",
		"first_name":    "A",
		"last_name":     "B",
		"coupens":       []string{"WELCOME10"},
	}, nil)

	// By numeric user id
	w := doJSON(r, http.MethodGet, "/users/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		Coupons []string `json:"coupens"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "ab", detail.User.Username)
	assert.Equal(t, []string{"WELCOME10"}, detail.Coupons)

	// By username
	w = doJSON(r, http.MethodGet, "/users/ab", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// By session uuid after login
	loginW := doJSON(r, http.MethodGet, "/users/login", nil, basicAuth("ab", "p"))
	var identity struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(loginW.Body.Bytes(), &identity))

	w = doJSON(r, http.MethodGet, "/users/"+identity.ID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/users/unknown-user", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserCoupons(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	doJSON(r, http.MethodPost, "/users", gin.H{
		"email_address": "a@b.com",
		"password":      "p",
		"first_name":    "A",
		"last_name":     "B",
		"coupens":       []string{"WELCOME10", "SUMMER20"},
	}, nil)

	// Not logged in yet
	w := doJSON(r, http.MethodGet, "/users/ab/coupons", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	doJSON(r, http.MethodGet, "/users/login", nil, basicAuth("ab", "p"))

	w = doJSON(r, http.MethodGet, "/users/ab/coupons", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var coupons struct {
		Coupons []string `json:"coupens"`
		Total   int      `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &coupons))
	assert.Equal(t, []string{"WELCOME10", "SUMMER20"}, coupons.Coupons)
	assert.Equal(t, 2, coupons.Total)

	w = doJSON(r, http.MethodGet, "/users/nobody/coupons", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	doJSON(r, http.MethodPost, "/users", gin.H{
		"email_address": "a@b.com",
		"password":      "p",
		"first_name":    "A",
		"last_name":     "B",
	}, nil)

	w := doJSON(r, http.MethodPut, "/users/1", gin.H{"first_name": "Alice"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")

	w = doJSON(r, http.MethodPut, "/users/1", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/users/99", gin.H{"first_name": "X"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/users/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/users/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
