// internal/model/user.go
package model

import "time"

// User is an account created through /register. The password is stored
// as plain text: there is no session or token layer in this service and
// hashing is deliberately out of scope.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"userId"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	Plans    []WorkoutPlan     `gorm:"foreignKey:UserID" json:"-"`
	Progress []WorkoutProgress `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// AuthRequest is the body of both /register and /login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is always returned with HTTP 200; Success carries the
// actual outcome. Username and UserID are only set on success.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	UserID   uint   `json:"userId,omitempty"`
}
