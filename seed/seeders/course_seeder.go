package seeders

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/skyward-academy/curricula_api/curriculum"
	"github.com/skyward-academy/curricula_api/model"
	"github.com/skyward-academy/curricula_api/shared"
	"gorm.io/gorm"
)

// CourseSeeder seeds a demo course with a small curriculum so the
// builder has something to open out of the box.
type CourseSeeder struct {
	db *gorm.DB
}

// NewCourseSeeder creates a new course seeder
func NewCourseSeeder(db *gorm.DB) *CourseSeeder {
	return &CourseSeeder{db: db}
}

// SeedDemoCourse creates the demo course and its modules
func (s *CourseSeeder) SeedDemoCourse() error {
	var existing model.Course
	if err := s.db.Where("title = ?", demoCourseTitle).First(&existing).Error; err == nil {
		log.Println("Demo course already exists, skipping course seeding")
		return nil
	}

	var admin model.User
	if err := s.db.Where("role = ?", shared.RoleAdmin).First(&admin).Error; err != nil {
		return err
	}

	courseID, _ := uuid.NewV7()
	course := model.Course{
		ID:          courseID.String(),
		Title:       demoCourseTitle,
		Description: "A short end-to-end tour of building and publishing a course.",
		Category:    "onboarding",
		Level:       "beginner",
		Status:      shared.CourseStatusDraft,
		TutorID:     admin.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		for i, rec := range demoModules() {
			items, err := sonic.Marshal(rec.Lessons)
			if err != nil {
				return err
			}
			moduleID, _ := uuid.NewV7()
			module := model.CourseModule{
				ID:        moduleID.String(),
				CourseID:  course.ID,
				Title:     rec.Title,
				Summary:   rec.Summary,
				Order:     i,
				Items:     items,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&module).Error; err != nil {
				return err
			}
		}

		log.Printf("Created demo course: %s", course.Title)
		return nil
	})
}

const demoCourseTitle = "Getting Started with Skyward"

func demoModules() []curriculum.ModuleRecord {
	return []curriculum.ModuleRecord{
		{
			Title:   "Welcome",
			Summary: "Orientation and what to expect",
			Lessons: []curriculum.ItemRecord{
				{
					Type:     string(curriculum.KindLesson),
					Name:     "Course overview",
					About:    "What this course covers and how to work through it.",
					Duration: "00:05:30",
				},
				{
					Type:        string(curriculum.KindQuiz),
					Name:        "Orientation check",
					MaxAttempts: 3,
					Questions: []curriculum.Question{
						{
							ID:            curriculum.NewID(),
							Type:          curriculum.QuestionMultipleChoice,
							Prompt:        "Where do you find your cohort schedule?",
							Options:       []string{"The dashboard", "Email only", "Nowhere"},
							CorrectAnswer: "The dashboard",
						},
					},
				},
			},
		},
		{
			Title:   "First Steps",
			Summary: "Hands-on work begins here",
			Lessons: []curriculum.ItemRecord{
				{
					Type:          string(curriculum.KindAssignment),
					Name:          "Introduce yourself",
					Content:       "Post a short introduction in the cohort channel and attach a photo.",
					TotalPoints:   10,
					MinPassPoints: 5,
					MaxFiles:      1,
					MaxFileSize:   5,
				},
				{
					Type:            string(curriculum.KindLiveClass),
					Name:            "Kickoff call",
					Platform:        curriculum.PlatformGoogleMeet,
					DurationMinutes: 45,
				},
			},
		},
	}
}
