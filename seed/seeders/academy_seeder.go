package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/skyward-academy/curricula_api/model"
	"gorm.io/gorm"
)

// AcademySeeder seeds a demo cohort with a handful of students attached
// to the demo course.
type AcademySeeder struct {
	db *gorm.DB
}

// NewAcademySeeder creates a new academy seeder
func NewAcademySeeder(db *gorm.DB) *AcademySeeder {
	return &AcademySeeder{db: db}
}

// SeedDemoCohort creates the demo cohort, a tutor and two students
func (s *AcademySeeder) SeedDemoCohort() error {
	var existing model.Cohort
	if err := s.db.Where("name = ?", demoCohortName).First(&existing).Error; err == nil {
		log.Println("Demo cohort already exists, skipping academy seeding")
		return nil
	}

	var course model.Course
	if err := s.db.Where("title = ?", demoCourseTitle).First(&course).Error; err != nil {
		return err
	}

	cohortID, _ := uuid.NewV7()
	start := time.Now().AddDate(0, 0, 7)
	end := start.AddDate(0, 2, 0)
	cohort := model.Cohort{
		ID:        cohortID.String(),
		Name:      demoCohortName,
		CourseID:  course.ID,
		StartDate: &start,
		EndDate:   &end,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Create(&cohort).Error; err != nil {
		return err
	}

	tutorID, _ := uuid.NewV7()
	tutor := model.Tutor{
		ID:        tutorID.String(),
		Name:      "Dana Reyes",
		Email:     "dana.reyes@skyward.academy",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Create(&tutor).Error; err != nil {
		return err
	}

	students := []model.Student{
		{Name: "Minh Tran", Email: "minh.tran@example.com"},
		{Name: "Sofia Alvarez", Email: "sofia.alvarez@example.com"},
	}
	for i := range students {
		id, _ := uuid.NewV7()
		students[i].ID = id.String()
		students[i].CohortID = cohort.ID
		students[i].IsActive = true
		students[i].CreatedAt = time.Now()
		students[i].UpdatedAt = time.Now()
		if err := s.db.Create(&students[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Created demo cohort %q with %d students", cohort.Name, len(students))
	return nil
}

const demoCohortName = "Fall Demo Cohort"
