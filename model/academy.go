package model

import "time"

// Cohort groups students enrolled in a course run.
type Cohort struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	CourseID  string     `json:"course_id" gorm:"index"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationship
	Course Course `json:"-" gorm:"foreignKey:CourseID"`
}

type Student struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone"`
	CohortID  string    `json:"cohort_id" gorm:"index"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationship
	Cohort Cohort `json:"-" gorm:"foreignKey:CohortID"`
}

type Tutor struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Bio       string    `json:"bio" gorm:"type:text"`
	AvatarURL string    `json:"avatar_url"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Broadcast is an announcement sent to a cohort's students by email.
type Broadcast struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Subject   string     `json:"subject" gorm:"not null"`
	Body      string     `json:"body" gorm:"type:text"`
	CohortID  string     `json:"cohort_id" gorm:"index"`
	Status    string     `json:"status" gorm:"default:draft"`
	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationship
	Cohort Cohort `json:"-" gorm:"foreignKey:CohortID"`
}
