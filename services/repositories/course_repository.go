package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/skyward-academy/curricula_api/model"
	"gorm.io/gorm"
)

type CourseRepository struct {
	BaseRepository
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *CourseRepository) GetCourse(id string) (*model.Course, error) {
	var course model.Course
	if err := ds.db.First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (ds *CourseRepository) GetCourses(query, category, status string, limit int) ([]model.Course, error) {
	q := ds.db.Model(&model.Course{})
	if query != "" {
		q = q.Where("title ILIKE ?", "%"+query+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var courses []model.Course
	if err := q.Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (ds *CourseRepository) CreateCourse(course *model.Course) (*model.Course, error) {
	if course.ID == "" {
		id, _ := uuid.NewV7()
		course.ID = id.String()
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	if err := ds.db.Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (ds *CourseRepository) UpdateCourse(course *model.Course) error {
	course.UpdatedAt = time.Now()
	return ds.db.Save(course).Error
}

func (ds *CourseRepository) DeleteCourse(id string) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseModule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, "id = ?", id).Error
	})
}

// GetModules returns a course's curriculum modules in delivery order.
func (ds *CourseRepository) GetModules(courseID string) ([]model.CourseModule, error) {
	var modules []model.CourseModule
	if err := ds.db.Where("course_id = ?", courseID).Order("\"order\" ASC").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// ReplaceModules swaps a course's entire curriculum and its settings in
// one transaction. The builder-save endpoint persists the whole tree in
// a single request; partial module writes are never visible.
func (ds *CourseRepository) ReplaceModules(courseID string, modules []model.CourseModule, imageURL, videoURL, description string) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&model.CourseModule{}).Error; err != nil {
			return err
		}
		now := time.Now()
		for i := range modules {
			id, _ := uuid.NewV7()
			modules[i].ID = id.String()
			modules[i].CourseID = courseID
			modules[i].Order = i
			modules[i].CreatedAt = now
			modules[i].UpdatedAt = now
		}
		if len(modules) > 0 {
			if err := tx.Create(&modules).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Course{}).Where("id = ?", courseID).Updates(map[string]interface{}{
			"image_url":   imageURL,
			"video_url":   videoURL,
			"description": description,
			"updated_at":  now,
		}).Error
	})
}

func (ds *CourseRepository) CountModules(courseID string) (int64, error) {
	var n int64
	err := ds.db.Model(&model.CourseModule{}).Where("course_id = ?", courseID).Count(&n).Error
	return n, err
}
