package services

import (
	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/curriculum"
	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/model"
	"github.com/skyward-academy/curricula_api/services/repositories"
	"github.com/skyward-academy/curricula_api/shared"
)

type CourseService struct {
	context.DefaultService
	sqlSvc     *PostgresService
	courseRepo *repositories.CourseRepository
}

const COURSE_SVC = "course_svc"

func (svc CourseService) Id() string {
	return COURSE_SVC
}

func (svc *CourseService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.courseRepo = repositories.NewCourseRepository(svc.sqlSvc.Db())
	return nil
}

// ==================== COURSE CRUD ====================

func (svc *CourseService) GetCourse(id string) (*model.Course, error) {
	course, err := svc.courseRepo.GetCourse(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return course, nil
}

func (svc *CourseService) ListCourses(req dto.CourseSearchRequest) ([]model.Course, error) {
	courses, err := svc.courseRepo.GetCourses(req.Query, req.Category, req.Status, req.Limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return courses, nil
}

func (svc *CourseService) CreateCourse(tutorID string, req dto.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Price:       req.Price,
		Status:      shared.CourseStatusDraft,
		TutorID:     tutorID,
	}

	created, err := svc.courseRepo.CreateCourse(course)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.Printf("Created course %s (%s)", created.ID, created.Title)
	return created, nil
}

func (svc *CourseService) UpdateCourse(id string, req dto.UpdateCourseRequest) (*model.Course, error) {
	course, err := svc.courseRepo.GetCourse(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Category != "" {
		course.Category = req.Category
	}
	if req.Level != "" {
		course.Level = req.Level
	}
	if req.Price > 0 {
		course.Price = req.Price
	}
	if req.Status != "" {
		course.Status = req.Status
	}

	if err := svc.courseRepo.UpdateCourse(course); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return course, nil
}

func (svc *CourseService) DeleteCourse(id string) error {
	if _, err := svc.courseRepo.GetCourse(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	if err := svc.courseRepo.DeleteCourse(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	log.Printf("Deleted course %s and its modules", id)
	return nil
}

// ==================== CURRICULUM PERSISTENCE ====================

// GetModuleRecords loads a course's persisted curriculum in the
// builder's wire shape, ready for decoding into a tree.
func (svc *CourseService) GetModuleRecords(courseID string) ([]curriculum.ModuleRecord, error) {
	rows, err := svc.courseRepo.GetModules(courseID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	records := make([]curriculum.ModuleRecord, 0, len(rows))
	for _, row := range rows {
		rec := curriculum.ModuleRecord{Title: row.Title, Summary: row.Summary}
		if len(row.Items) > 0 {
			if err := sonic.Unmarshal(row.Items, &rec.Lessons); err != nil {
				return nil, shared.NewInternalError(err, "Stored curriculum items are corrupt")
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveCurriculum replaces the course's stored curriculum with the
// payload in one transaction. Called by the builder's save pipeline.
func (svc *CourseService) SaveCurriculum(courseID string, payload curriculum.SavePayload) error {
	modules := make([]model.CourseModule, 0, len(payload.Modules))
	for _, rec := range payload.Modules {
		items, err := sonic.Marshal(rec.Lessons)
		if err != nil {
			return shared.NewInternalError(err, "Failed to encode curriculum items")
		}
		modules = append(modules, model.CourseModule{
			Title:   rec.Title,
			Summary: rec.Summary,
			Items:   items,
		})
	}

	settings := payload.CourseSettings
	if err := svc.courseRepo.ReplaceModules(courseID, modules, settings.Image, settings.Video, settings.Description); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	log.Printf("Saved curriculum for course %s (%d modules)", courseID, len(modules))
	return nil
}
