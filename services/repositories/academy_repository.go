package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/skyward-academy/curricula_api/model"
	"gorm.io/gorm"
)

type AcademyRepository struct {
	BaseRepository
}

func NewAcademyRepository(db *gorm.DB) *AcademyRepository {
	return &AcademyRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== COHORTS ====================

func (ds *AcademyRepository) GetCohort(id string) (*model.Cohort, error) {
	var cohort model.Cohort
	if err := ds.db.First(&cohort, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cohort, nil
}

func (ds *AcademyRepository) GetCohorts(page, limit int, search string) ([]model.Cohort, int64, error) {
	q := ds.db.Model(&model.Cohort{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cohorts []model.Cohort
	if err := paginate(q, page, limit).Order("created_at DESC").Find(&cohorts).Error; err != nil {
		return nil, 0, err
	}
	return cohorts, total, nil
}

func (ds *AcademyRepository) CreateCohort(cohort *model.Cohort) (*model.Cohort, error) {
	id, _ := uuid.NewV7()
	cohort.ID = id.String()
	cohort.CreatedAt = time.Now()
	cohort.UpdatedAt = time.Now()
	if err := ds.db.Create(cohort).Error; err != nil {
		return nil, err
	}
	return cohort, nil
}

func (ds *AcademyRepository) UpdateCohort(cohort *model.Cohort) error {
	cohort.UpdatedAt = time.Now()
	return ds.db.Save(cohort).Error
}

func (ds *AcademyRepository) DeleteCohort(id string) error {
	return ds.db.Delete(&model.Cohort{}, "id = ?", id).Error
}

func (ds *AcademyRepository) CountCohortStudents(cohortID string) (int64, error) {
	var n int64
	err := ds.db.Model(&model.Student{}).Where("cohort_id = ?", cohortID).Count(&n).Error
	return n, err
}

// ==================== STUDENTS ====================

func (ds *AcademyRepository) GetStudent(id string) (*model.Student, error) {
	var student model.Student
	if err := ds.db.First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (ds *AcademyRepository) GetStudents(page, limit int, search, cohortID string) ([]model.Student, int64, error) {
	q := ds.db.Model(&model.Student{})
	if search != "" {
		q = q.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if cohortID != "" {
		q = q.Where("cohort_id = ?", cohortID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var students []model.Student
	if err := paginate(q, page, limit).Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (ds *AcademyRepository) GetCohortStudents(cohortID string) ([]model.Student, error) {
	var students []model.Student
	if err := ds.db.Where("cohort_id = ? AND is_active = ?", cohortID, true).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (ds *AcademyRepository) CreateStudent(student *model.Student) (*model.Student, error) {
	id, _ := uuid.NewV7()
	student.ID = id.String()
	student.IsActive = true
	student.CreatedAt = time.Now()
	student.UpdatedAt = time.Now()
	if err := ds.db.Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

func (ds *AcademyRepository) UpdateStudent(student *model.Student) error {
	student.UpdatedAt = time.Now()
	return ds.db.Save(student).Error
}

func (ds *AcademyRepository) DeleteStudent(id string) error {
	return ds.db.Delete(&model.Student{}, "id = ?", id).Error
}

// ==================== TUTORS ====================

func (ds *AcademyRepository) GetTutor(id string) (*model.Tutor, error) {
	var tutor model.Tutor
	if err := ds.db.First(&tutor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tutor, nil
}

func (ds *AcademyRepository) GetTutors(page, limit int, search string) ([]model.Tutor, int64, error) {
	q := ds.db.Model(&model.Tutor{})
	if search != "" {
		q = q.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tutors []model.Tutor
	if err := paginate(q, page, limit).Order("created_at DESC").Find(&tutors).Error; err != nil {
		return nil, 0, err
	}
	return tutors, total, nil
}

func (ds *AcademyRepository) CreateTutor(tutor *model.Tutor) (*model.Tutor, error) {
	id, _ := uuid.NewV7()
	tutor.ID = id.String()
	tutor.IsActive = true
	tutor.CreatedAt = time.Now()
	tutor.UpdatedAt = time.Now()
	if err := ds.db.Create(tutor).Error; err != nil {
		return nil, err
	}
	return tutor, nil
}

func (ds *AcademyRepository) UpdateTutor(tutor *model.Tutor) error {
	tutor.UpdatedAt = time.Now()
	return ds.db.Save(tutor).Error
}

func (ds *AcademyRepository) DeleteTutor(id string) error {
	return ds.db.Delete(&model.Tutor{}, "id = ?", id).Error
}

// ==================== BROADCASTS ====================

func (ds *AcademyRepository) GetBroadcast(id string) (*model.Broadcast, error) {
	var broadcast model.Broadcast
	if err := ds.db.First(&broadcast, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &broadcast, nil
}

func (ds *AcademyRepository) GetBroadcasts(page, limit int, search string) ([]model.Broadcast, int64, error) {
	q := ds.db.Model(&model.Broadcast{})
	if search != "" {
		q = q.Where("subject ILIKE ?", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var broadcasts []model.Broadcast
	if err := paginate(q, page, limit).Order("created_at DESC").Find(&broadcasts).Error; err != nil {
		return nil, 0, err
	}
	return broadcasts, total, nil
}

func (ds *AcademyRepository) CreateBroadcast(broadcast *model.Broadcast) (*model.Broadcast, error) {
	id, _ := uuid.NewV7()
	broadcast.ID = id.String()
	broadcast.CreatedAt = time.Now()
	broadcast.UpdatedAt = time.Now()
	if err := ds.db.Create(broadcast).Error; err != nil {
		return nil, err
	}
	return broadcast, nil
}

func (ds *AcademyRepository) UpdateBroadcast(broadcast *model.Broadcast) error {
	broadcast.UpdatedAt = time.Now()
	return ds.db.Save(broadcast).Error
}

func (ds *AcademyRepository) DeleteBroadcast(id string) error {
	return ds.db.Delete(&model.Broadcast{}, "id = ?", id).Error
}
