package models

import (
	"time"

	"gorm.io/datatypes"
)

// User holds the account profile plus the session state for the single
// live session a user may hold at a time. SessionID and AccessToken are
// empty exactly when IsLoggedIn is false.
type User struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    int    `gorm:"uniqueIndex;not null" json:"userid"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Contact   string `json:"contact"`
	Password  string `gorm:"not null" json:"-"`
	Role      string `gorm:"not null;default:'user'" json:"role"`

	IsLoggedIn  bool   `gorm:"not null;default:false" json:"isLoggedIn"`
	SessionID   string `gorm:"index" json:"uuid"`
	AccessToken string `gorm:"index" json:"accesstoken"`

	Coupons         datatypes.JSONSlice[string] `json:"coupens"`
	BookingRequests datatypes.JSONSlice[string] `json:"bookingRequests"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
