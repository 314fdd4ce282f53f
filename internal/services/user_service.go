package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/models"
	"github.com/sonalirv01/moviesdb/internal/utils"
)

var (
	ErrMissingFields      = errors.New("email, password, first name, and last name are required")
	ErrUsernameTaken      = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotLoggedIn        = errors.New("user must be logged in to get coupons")
)

// signUpAttempts bounds the retry loop that resolves user id collisions
// between concurrent sign-ups. The id is computed as max+1 inside the
// insert transaction, so a collision surfaces as a unique index violation
// and the next attempt recomputes from the winner's id.
const signUpAttempts = 3

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// SignUpInput carries the sign-up profile fields.
type SignUpInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Username        string
	Contact         string
	Role            string
	Coupons         []string
	BookingRequests []string
}

// SignUpUser creates a new account with a hashed password, a unique
// sequential user id and logged-out session fields.
func SignUpUser(input SignUpInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, ErrMissingFields
	}

	username := input.Username
	if username == "" {
		username = strings.ToLower(input.FirstName + input.LastName)
	}

	var existing models.User
	result := database.DB.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "user"
	}

	user := &models.User{
		Username:        username,
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Contact:         input.Contact,
		Password:        hashedPassword,
		Role:            role,
		IsLoggedIn:      false,
		Coupons:         input.Coupons,
		BookingRequests: input.BookingRequests,
	}

	var lastErr error
	for attempt := 0; attempt < signUpAttempts; attempt++ {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var maxID int64
			if err := tx.Model(&models.User{}).Select("COALESCE(MAX(user_id), 0)").Scan(&maxID).Error; err != nil {
				return err
			}
			user.UserID = int(maxID) + 1
			return tx.Create(user).Error
		})
		if err == nil {
			return user, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
		if strings.Contains(strings.ToLower(err.Error()), "username") {
			return nil, ErrUsernameTaken
		}
		lastErr = err
	}

	return nil, lastErr
}

// LoginUser verifies credentials and, on success, mints a fresh session id
// and access token onto the user record. A second login overwrites the
// prior session, invalidating its token.
func LoginUser(username, password string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	sessionID := utils.NewSessionID()
	token, err := utils.NewAccessToken()
	if err != nil {
		return nil, err
	}

	oldToken := user.AccessToken
	updates := map[string]interface{}{
		"is_logged_in": true,
		"session_id":   sessionID,
		"access_token": token,
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if oldToken != "" {
		DropCachedToken(oldToken)
	}

	user.IsLoggedIn = true
	user.SessionID = sessionID
	user.AccessToken = token
	return &user, nil
}

// LogoutUser clears the session state of the user holding the given
// session id. Cleared session ids are empty and empty ids are never
// issued, so a repeated logout with a stale id fails with ErrUserNotFound.
func LogoutUser(sessionID string) error {
	if sessionID == "" {
		return ErrUserNotFound
	}

	var user models.User
	if err := database.DB.Where("session_id = ?", sessionID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// The clear is keyed on the session id itself, so a login that replaced
	// the session since the read keeps its fresh session and this id
	// reports as stale. The read above only learns the token to evict.
	result := database.DB.Model(&models.User{}).Where("session_id = ?", sessionID).Updates(map[string]interface{}{
		"is_logged_in": false,
		"session_id":   "",
		"access_token": "",
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	DropCachedToken(user.AccessToken)
	return nil
}

// FindUserByToken resolves a bearer token back to its user. Unknown
// tokens and tokens cleared by logout are indistinguishable. Logged-out
// records persist an empty token, so an empty token never resolves.
func FindUserByToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUserNotFound
	}

	if userID, ok := CachedTokenUser(token); ok {
		var user models.User
		if err := database.DB.Where("user_id = ? AND access_token = ?", userID, token).First(&user).Error; err == nil {
			return &user, nil
		}
		DropCachedToken(token)
	}

	var user models.User
	if err := database.DB.Where("access_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	CacheTokenUser(token, user.UserID)
	return &user, nil
}

// FindUserByIdentifier resolves a user from a numeric user id, a session
// uuid or a username. Matchers run in that priority order and only when
// the identifier has the matching shape.
func FindUserByIdentifier(id string) (*models.User, error) {
	if n, err := strconv.Atoi(id); err == nil {
		user, err := findUserBy("user_id = ?", n)
		if err == nil || !errors.Is(err, ErrUserNotFound) {
			return user, err
		}
	}

	if uuidPattern.MatchString(id) {
		user, err := findUserBy("session_id = ?", id)
		if err == nil || !errors.Is(err, ErrUserNotFound) {
			return user, err
		}
	}

	return findUserBy("username = ?", id)
}

// FindUsers retrieves all users. An empty store lists as an empty
// slice, not nil, so it serializes as [].
func FindUsers() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := database.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies profile updates to the user with the given public id.
// A password update is re-hashed; identity and session fields are not
// touched through this path.
func UpdateUser(userID int, updates map[string]interface{}) (*models.User, error) {
	if len(updates) == 0 {
		return nil, ErrMissingFields
	}

	if password, ok := updates["password"].(string); ok && password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	for _, field := range []string{"user_id", "userid", "is_logged_in", "session_id", "access_token", "uuid", "accesstoken"} {
		delete(updates, field)
	}

	user, err := findUserBy("user_id = ?", userID)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return findUserBy("user_id = ?", userID)
}

// DeleteUser removes the user with the given public id.
func DeleteUser(userID int) error {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserCoupons returns the coupons of the identified user. The user must
// hold a live session.
func UserCoupons(id string) ([]string, error) {
	user, err := FindUserByIdentifier(id)
	if err != nil {
		return nil, err
	}
	if !user.IsLoggedIn {
		return nil, ErrNotLoggedIn
	}
	return user.Coupons, nil
}

func findUserBy(query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := database.DB.Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
