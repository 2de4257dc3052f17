package dto

import "time"

// Course DTOs

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price       float64 `json:"price" validate:"min=0"`
	TutorID     string  `json:"tutor_id"`
}

type UpdateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price       float64 `json:"price" validate:"min=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type CourseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url"`
	Status      string    `json:"status"`
	TutorID     string    `json:"tutor_id"`
	ModuleCount int       `json:"module_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseCollectionResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}

type CourseSearchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Limit    int    `json:"limit"`
}

func (r CreateCourseRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r UpdateCourseRequest) Validate() error {
	return GetValidator().Struct(r)
}
