package dto

import "time"

// Auth DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,strong_password"`
	Role     string `json:"role" validate:"omitempty,oneof=admin tutor"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
}

type ProfileResponse struct {
	UserID        string     `json:"user_id"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	Role          string     `json:"role"`
	MeetConnected bool       `json:"meet_connected"`
	LastLoginAt   *time.Time `json:"last_login_at"`
	JoinedAt      time.Time  `json:"joined_at"`
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}
