package model

import (
	"encoding/json"
	"time"
)

// Course is one course owned by a tutor. Curriculum content lives in
// CourseModule rows; the course row only carries catalog-level fields.
type Course struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category"`
	Level       string    `json:"level"` // beginner, intermediate, advanced
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url"`
	Status      string    `json:"status" gorm:"default:draft"`
	TutorID     string    `json:"tutor_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseModule is one persisted curriculum topic. Items holds the
// module's content items as a JSON array in the builder's wire shape;
// Order is the externally-maintained delivery position.
type CourseModule struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	CourseID  string          `json:"course_id" gorm:"not null;index"`
	Title     string          `json:"title" gorm:"not null"`
	Summary   string          `json:"summary" gorm:"type:text"`
	Order     int             `json:"order" gorm:"not null"`
	Items     json.RawMessage `json:"items" gorm:"type:text"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationship
	Course Course `json:"-" gorm:"foreignKey:CourseID"`
}
