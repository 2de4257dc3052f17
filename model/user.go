package model

import "time"

// User is a console operator account (admin or tutor).
type User struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Username    string     `json:"username" gorm:"uniqueIndex"`
	Password    string     `json:"-" gorm:"not null"`
	Role        string     `json:"role" gorm:"default:tutor"`
	MeetAccount string     `json:"meet_account"` // connected OAuth account for meeting link generation, empty when not connected
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
