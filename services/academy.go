package services

import (
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/model"
	"github.com/skyward-academy/curricula_api/services/repositories"
	"github.com/skyward-academy/curricula_api/shared"
)

// AcademyService covers the console's people-and-communication side:
// cohorts, students, tutors, and cohort email broadcasts.
type AcademyService struct {
	context.DefaultService
	sqlSvc   *PostgresService
	emailSvc *EmailService
	repo     *repositories.AcademyRepository
}

const ACADEMY_SVC = "academy_svc"

func (svc AcademyService) Id() string {
	return ACADEMY_SVC
}

func (svc *AcademyService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.emailSvc = svc.Service(EMAIL_SVC).(*EmailService)
	svc.repo = repositories.NewAcademyRepository(svc.sqlSvc.Db())
	return nil
}

// ==================== COHORTS ====================

func (svc *AcademyService) GetCohort(id string) (*model.Cohort, error) {
	cohort, err := svc.repo.GetCohort(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return cohort, nil
}

func (svc *AcademyService) ListCohorts(req dto.ListRequest) ([]model.Cohort, *dto.ListMeta, error) {
	cohorts, total, err := svc.repo.GetCohorts(req.Page, req.Limit, req.Search)
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}
	return cohorts, &dto.ListMeta{Page: req.Page, Limit: req.Limit, Total: total}, nil
}

func (svc *AcademyService) CreateCohort(req dto.CohortRequest) (*model.Cohort, error) {
	cohort, err := svc.repo.CreateCohort(&model.Cohort{
		Name:      req.Name,
		CourseID:  req.CourseID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return cohort, nil
}

func (svc *AcademyService) UpdateCohort(id string, req dto.CohortRequest) (*model.Cohort, error) {
	cohort, err := svc.repo.GetCohort(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	cohort.Name = req.Name
	cohort.CourseID = req.CourseID
	cohort.StartDate = req.StartDate
	cohort.EndDate = req.EndDate

	if err := svc.repo.UpdateCohort(cohort); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return cohort, nil
}

func (svc *AcademyService) DeleteCohort(id string) error {
	if _, err := svc.repo.GetCohort(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return svc.sqlSvc.HandleError(svc.repo.DeleteCohort(id))
}

func (svc *AcademyService) CountCohortStudents(cohortID string) (int64, error) {
	n, err := svc.repo.CountCohortStudents(cohortID)
	if err != nil {
		return 0, svc.sqlSvc.HandleError(err)
	}
	return n, nil
}

// ==================== STUDENTS ====================

func (svc *AcademyService) GetStudent(id string) (*model.Student, error) {
	student, err := svc.repo.GetStudent(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return student, nil
}

func (svc *AcademyService) ListStudents(req dto.ListRequest, cohortID string) ([]model.Student, *dto.ListMeta, error) {
	students, total, err := svc.repo.GetStudents(req.Page, req.Limit, req.Search, cohortID)
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}
	return students, &dto.ListMeta{Page: req.Page, Limit: req.Limit, Total: total}, nil
}

func (svc *AcademyService) CreateStudent(req dto.StudentRequest) (*model.Student, error) {
	student, err := svc.repo.CreateStudent(&model.Student{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		CohortID: req.CohortID,
		IsActive: true,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if req.CohortID != "" {
		if cohort, err := svc.repo.GetCohort(req.CohortID); err == nil {
			if err := svc.emailSvc.SendWelcomeEmail(student.Email, student.Name, cohort.Name); err != nil {
				log.WithError(err).Warn("Failed to send welcome email")
			}
		}
	}

	return student, nil
}

func (svc *AcademyService) UpdateStudent(id string, req dto.StudentRequest) (*model.Student, error) {
	student, err := svc.repo.GetStudent(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	student.Name = req.Name
	student.Email = req.Email
	student.Phone = req.Phone
	student.CohortID = req.CohortID

	if err := svc.repo.UpdateStudent(student); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return student, nil
}

func (svc *AcademyService) DeleteStudent(id string) error {
	if _, err := svc.repo.GetStudent(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return svc.sqlSvc.HandleError(svc.repo.DeleteStudent(id))
}

// ==================== TUTORS ====================

func (svc *AcademyService) GetTutor(id string) (*model.Tutor, error) {
	tutor, err := svc.repo.GetTutor(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return tutor, nil
}

func (svc *AcademyService) ListTutors(req dto.ListRequest) ([]model.Tutor, *dto.ListMeta, error) {
	tutors, total, err := svc.repo.GetTutors(req.Page, req.Limit, req.Search)
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}
	return tutors, &dto.ListMeta{Page: req.Page, Limit: req.Limit, Total: total}, nil
}

func (svc *AcademyService) CreateTutor(req dto.TutorRequest) (*model.Tutor, error) {
	tutor, err := svc.repo.CreateTutor(&model.Tutor{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		IsActive: true,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return tutor, nil
}

func (svc *AcademyService) UpdateTutor(id string, req dto.TutorRequest) (*model.Tutor, error) {
	tutor, err := svc.repo.GetTutor(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	tutor.Name = req.Name
	tutor.Email = req.Email
	tutor.Bio = req.Bio

	if err := svc.repo.UpdateTutor(tutor); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return tutor, nil
}

func (svc *AcademyService) DeleteTutor(id string) error {
	if _, err := svc.repo.GetTutor(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return svc.sqlSvc.HandleError(svc.repo.DeleteTutor(id))
}

// ==================== BROADCASTS ====================

func (svc *AcademyService) GetBroadcast(id string) (*model.Broadcast, error) {
	broadcast, err := svc.repo.GetBroadcast(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return broadcast, nil
}

func (svc *AcademyService) ListBroadcasts(req dto.ListRequest) ([]model.Broadcast, *dto.ListMeta, error) {
	broadcasts, total, err := svc.repo.GetBroadcasts(req.Page, req.Limit, req.Search)
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}
	return broadcasts, &dto.ListMeta{Page: req.Page, Limit: req.Limit, Total: total}, nil
}

func (svc *AcademyService) CreateBroadcast(req dto.BroadcastRequest) (*model.Broadcast, error) {
	if _, err := svc.repo.GetCohort(req.CohortID); err != nil {
		return nil, shared.NewNotFoundError(err, "Cohort not found")
	}

	broadcast, err := svc.repo.CreateBroadcast(&model.Broadcast{
		Subject:  req.Subject,
		Body:     req.Body,
		CohortID: req.CohortID,
		Status:   shared.BroadcastStatusDraft,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return broadcast, nil
}

// SendBroadcast emails a draft broadcast to every active student in its
// cohort, then marks it sent. Individual delivery failures are logged
// but don't abort the rest of the cohort.
func (svc *AcademyService) SendBroadcast(id string) (*model.Broadcast, int, error) {
	broadcast, err := svc.repo.GetBroadcast(id)
	if err != nil {
		return nil, 0, svc.sqlSvc.HandleError(err)
	}

	if broadcast.Status == shared.BroadcastStatusSent {
		return nil, 0, shared.NewConflictError(nil, "Broadcast has already been sent")
	}

	students, err := svc.repo.GetCohortStudents(broadcast.CohortID)
	if err != nil {
		return nil, 0, svc.sqlSvc.HandleError(err)
	}

	sent := 0
	for _, student := range students {
		if !student.IsActive {
			continue
		}
		if err := svc.emailSvc.SendBroadcastEmail(student.Email, student.Name, broadcast.Subject, broadcast.Body); err != nil {
			log.WithError(err).WithField("student", student.ID).Warn("Failed to deliver broadcast email")
			continue
		}
		sent++
	}

	now := time.Now()
	broadcast.Status = shared.BroadcastStatusSent
	broadcast.SentAt = &now
	if err := svc.repo.UpdateBroadcast(broadcast); err != nil {
		return nil, sent, svc.sqlSvc.HandleError(err)
	}

	log.Printf("Broadcast %s delivered to %d students", broadcast.ID, sent)
	return broadcast, sent, nil
}

func (svc *AcademyService) DeleteBroadcast(id string) error {
	if _, err := svc.repo.GetBroadcast(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return svc.sqlSvc.HandleError(svc.repo.DeleteBroadcast(id))
}
