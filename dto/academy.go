package dto

import "time"

// Cohort DTOs

type CohortRequest struct {
	Name      string     `json:"name" validate:"required"`
	CourseID  string     `json:"course_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type CohortResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	CourseID     string     `json:"course_id"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	StudentCount int        `json:"student_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Student DTOs

type StudentRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	CohortID string `json:"cohort_id"`
}

type StudentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CohortID  string    `json:"cohort_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Tutor DTOs

type TutorRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Bio   string `json:"bio"`
}

type TutorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Broadcast DTOs

type BroadcastRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Body     string `json:"body" validate:"required"`
	CohortID string `json:"cohort_id" validate:"required"`
}

type BroadcastResponse struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	CohortID   string     `json:"cohort_id"`
	Status     string     `json:"status"`
	SentAt     *time.Time `json:"sent_at"`
	Recipients int        `json:"recipients,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Shared list plumbing

type ListRequest struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

type ListMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func (r CohortRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r StudentRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r TutorRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r BroadcastRequest) Validate() error {
	return GetValidator().Struct(r)
}
