package user

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sonalirv01/moviesdb/internal/services"
	"github.com/sonalirv01/moviesdb/internal/utils"
)

// SignUp godoc
// @Summary Create a new user account
// @Description Sign up with email, password and name. Username defaults to the lowercased first+last name.
// @Tags user
// @Accept  json
// @Produce  json
// @Param   input     body   SignUpRequest  true  "Sign Up Input"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.MessageResponse
// @Failure 409 {object} utils.MessageResponse
// @Failure 500 {object} utils.MessageResponse
// @Router /users [post]
func SignUp(c *gin.Context) {
	var input SignUpRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.SignUpUser(services.SignUpInput{
		Email:           input.Email,
		Password:        input.Password,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Username:        input.Username,
		Contact:         input.MobileNumber,
		Role:            input.Role,
		Coupons:         input.Coupons,
		BookingRequests: input.BookingRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Email, password, first name, and last name are required!"))
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, utils.NewMessageResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error creating the user.", err))
		}
		return
	}

	c.JSON(http.StatusCreated, u)
}

// Login godoc
// @Summary Log in with basic credentials
// @Description Verify the Basic authorization header and issue a fresh session id and access token.
// @Tags user
// @Produce  json
// @Success 200 {object} IdentityResponse
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Router /users/login [get]
func Login(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Basic ") {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Authentication header is required!"))
		return
	}

	username, password, err := utils.ParseBasicAuth(header)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Username and password are required!"))
		return
	}

	u, err := services.LoginUser(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.NewMessageResponse("Invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error processing login", err))
		return
	}

	c.Header("access-token", u.AccessToken)
	c.JSON(http.StatusOK, newIdentityResponse(u, u.AccessToken))
}

// Logout godoc
// @Summary Log out a session
// @Description Clear the session state of the user holding the given session id.
// @Tags user
// @Produce  json
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Router /users/logout/{sessionId} [put]
func Logout(c *gin.Context) {
	sessionID := c.Param("sessionId")

	if err := services.LogoutUser(sessionID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("User not found with uuid=%s", sessionID)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error logging out user", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewMessageResponse("User logged out successfully"))
}

// GetUserByToken godoc
// @Summary Resolve a bearer token
// @Description Look up the identity behind an access token.
// @Tags user
// @Produce  json
// @Success 200 {object} IdentityResponse
// @Failure 401 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Router /users/token [get]
func GetUserByToken(c *gin.Context) {
	token := utils.ParseBearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusUnauthorized, utils.NewMessageResponse("Authentication token is required!"))
		return
	}

	u, err := services.FindUserByToken(token)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse("User not found with provided token"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving user by token", err))
		return
	}

	// The caller already holds the token, so the view does not echo it.
	c.JSON(http.StatusOK, newIdentityResponse(u, ""))
}

// ListUsers returns all users.
func ListUsers(c *gin.Context) {
	users, err := services.FindUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving users.", err))
		return
	}

	c.JSON(http.StatusOK, UserListResponse{
		Users: users,
		Page:  1,
		Limit: len(users),
		Total: len(users),
	})
}

// GetUser resolves a user from a numeric id, a session uuid or a username.
func GetUser(c *gin.Context) {
	id := c.Param("id")

	u, err := services.FindUserByIdentifier(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("User not found with id=%s", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving user with id="+id, err))
		return
	}

	c.JSON(http.StatusOK, UserDetailResponse{
		User:            *u,
		Coupons:         u.Coupons,
		BookingRequests: u.BookingRequests,
	})
}

// UpdateUser applies profile updates to the user with the given public id.
func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid user ID format"))
		return
	}

	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.MobileNumber != nil {
		updates["contact"] = *req.MobileNumber
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Data to update cannot be empty!"))
		return
	}

	u, err := services.UpdateUser(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("User not found with id=%d", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(fmt.Sprintf("Error updating user with id=%d", id), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    u,
	})
}

// DeleteUser removes the user with the given public id.
func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewMessageResponse("Invalid user ID format"))
		return
	}

	if err := services.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("User not found with id=%d", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(fmt.Sprintf("Could not delete user with id=%d", id), err))
		return
	}

	c.JSON(http.StatusOK, utils.NewMessageResponse("User deleted successfully"))
}

// GetUserCoupons returns the coupons of a logged-in user.
func GetUserCoupons(c *gin.Context) {
	id := c.Param("id")

	coupons, err := services.UserCoupons(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewMessageResponse(fmt.Sprintf("User not found with id=%s", id)))
		case errors.Is(err, services.ErrNotLoggedIn):
			c.JSON(http.StatusUnauthorized, utils.NewMessageResponse("User must be logged in to get coupons"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Error retrieving coupons for user with id="+id, err))
		}
		return
	}

	c.JSON(http.StatusOK, CouponListResponse{
		Coupons: coupons,
		Page:    1,
		Limit:   len(coupons),
		Total:   len(coupons),
	})
}
