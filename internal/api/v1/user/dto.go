package user

import "github.com/sonalirv01/moviesdb/internal/models"

// SignUpRequest defines the sign-up request body.
type SignUpRequest struct {
	Email           string   `json:"email_address" binding:"required"`
	Password        string   `json:"password" binding:"required"`
	FirstName       string   `json:"first_name" binding:"required"`
	LastName        string   `json:"last_name" binding:"required"`
	Username        string   `json:"username"`
	MobileNumber    string   `json:"mobile_number"`
	Role            string   `json:"role"`
	Coupons         []string `json:"coupens"`
	BookingRequests []string `json:"bookingRequests"`
}

// UpdateUserRequest defines the mutable profile fields.
type UpdateUserRequest struct {
	Email        *string `json:"email_address,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Username     *string `json:"username,omitempty"`
	MobileNumber *string `json:"mobile_number,omitempty"`
	Role         *string `json:"role,omitempty"`
	Password     *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

// IdentityResponse is the redacted identity view returned by login and
// token lookup. The id field carries the session identifier; the password
// hash is never part of it.
type IdentityResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	IsLoggedIn  bool   `json:"isLoggedIn"`
	AccessToken string `json:"access-token,omitempty"`
}

// UserListResponse wraps the user listing.
type UserListResponse struct {
	Users []models.User `json:"users"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
}

// UserDetailResponse wraps a single user lookup.
type UserDetailResponse struct {
	User            models.User `json:"user"`
	Coupons         []string    `json:"coupens"`
	BookingRequests []string    `json:"bookingRequests"`
}

// CouponListResponse wraps the coupons of a user.
type CouponListResponse struct {
	Coupons []string `json:"coupens"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
}

func newIdentityResponse(u *models.User, token string) IdentityResponse {
	return IdentityResponse{
		ID:          u.SessionID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		IsLoggedIn:  u.IsLoggedIn,
		AccessToken: token,
	}
}
