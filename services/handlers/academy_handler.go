package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/model"
	"github.com/skyward-academy/curricula_api/shared"
)

type AcademyHandler struct {
	academySvc AcademyServiceInterface
}

func NewAcademyHandler(academySvc AcademyServiceInterface) *AcademyHandler {
	return &AcademyHandler{academySvc: academySvc}
}

func listRequest(c *fiber.Ctx) dto.ListRequest {
	return dto.ListRequest{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
		Search: c.Query("search"),
	}
}

// ==================== COHORTS ====================

// @Summary List Cohorts
// @Tags academy
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Name search"
// @Success 200 {object} shared.Response{data=[]dto.CohortResponse}
// @Router /api/v1/cohorts [get]
func (h *AcademyHandler) ListCohorts(c *fiber.Ctx) error {
	cohorts, meta, err := h.academySvc.ListCohorts(listRequest(c))
	if err != nil {
		return err
	}

	out := make([]dto.CohortResponse, 0, len(cohorts))
	for _, cohort := range cohorts {
		count, _ := h.academySvc.CountCohortStudents(cohort.ID)
		out = append(out, dto.CohortResponse{
			ID:           cohort.ID,
			Name:         cohort.Name,
			CourseID:     cohort.CourseID,
			StartDate:    cohort.StartDate,
			EndDate:      cohort.EndDate,
			StudentCount: int(count),
			CreatedAt:    cohort.CreatedAt,
		})
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{"cohorts": out, "meta": meta})
}

// @Summary Get Cohort
// @Tags academy
// @Produce json
// @Security Bearer
// @Param cohortId path string true "Cohort ID"
// @Success 200 {object} shared.Response{data=model.Cohort}
// @Router /api/v1/cohorts/{cohortId} [get]
func (h *AcademyHandler) GetCohort(c *fiber.Ctx) error {
	cohort, err := h.academySvc.GetCohort(c.Params("cohortId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", cohort)
}

// @Summary Create Cohort
// @Tags academy
// @Accept json
// @Produce json
// @Security Bearer
// @Param cohort body dto.CohortRequest true "Cohort fields"
// @Success 201 {object} shared.Response{data=model.Cohort}
// @Router /api/v1/cohorts [post]
func (h *AcademyHandler) CreateCohort(c *fiber.Ctx) error {
	var req dto.CohortRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	cohort, err := h.academySvc.CreateCohort(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Cohort created", cohort)
}

// @Summary Update Cohort
// @Tags academy
// @Accept json
// @Produce json
// @Security Bearer
// @Param cohortId path string true "Cohort ID"
// @Param cohort body dto.CohortRequest true "Cohort fields"
// @Success 200 {object} shared.Response{data=model.Cohort}
// @Router /api/v1/cohorts/{cohortId} [put]
func (h *AcademyHandler) UpdateCohort(c *fiber.Ctx) error {
	var req dto.CohortRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	cohort, err := h.academySvc.UpdateCohort(c.Params("cohortId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Cohort updated", cohort)
}

// @Summary Delete Cohort
// @Tags academy
// @Produce json
// @Security Bearer
// @Param cohortId path string true "Cohort ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/cohorts/{cohortId} [delete]
func (h *AcademyHandler) DeleteCohort(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.academySvc.DeleteCohort(c.Params("cohortId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Cohort deleted", "deleted")
}

// ==================== STUDENTS ====================

// @Summary List Students
// @Tags academy
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Name/email search"
// @Param cohort_id query string false "Cohort filter"
// @Success 200 {object} shared.Response{data=[]model.Student}
// @Router /api/v1/students [get]
func (h *AcademyHandler) ListStudents(c *fiber.Ctx) error {
	students, meta, err := h.academySvc.ListStudents(listRequest(c), c.Query("cohort_id"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{"students": students, "meta": meta})
}

// @Summary Create Student
// @Tags academy
// @Accept json
// @Produce json
// @Security Bearer
// @Param student body dto.StudentRequest true "Student fields"
// @Success 201 {object} shared.Response{data=model.Student}
// @Router /api/v1/students [post]
func (h *AcademyHandler) CreateStudent(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	student, err := h.academySvc.CreateStudent(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Student created", student)
}

// @Summary Update Student
// @Tags academy
// @Accept json
// @Produce json
// @Security Bearer
// @Param studentId path string true "Student ID"
// @Param student body dto.StudentRequest true "Student fields"
// @Success 200 {object} shared.Response{data=model.Student}
// @Router /api/v1/students/{studentId} [put]
func (h *AcademyHandler) UpdateStudent(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	student, err := h.academySvc.UpdateStudent(c.Params("studentId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Student updated", student)
}

// @Summary Delete Student
// @Tags academy
// @Produce json
// @Security Bearer
// @Param studentId path string true "Student ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/students/{studentId} [delete]
func (h *AcademyHandler) DeleteStudent(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.academySvc.DeleteStudent(c.Params("studentId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Student deleted", "deleted")
}

// ==================== TUTORS ====================

// @Summary List Tutors
// @Tags academy
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Name/email search"
// @Success 200 {object} shared.Response{data=[]model.Tutor}
// @Router /api/v1/tutors [get]
func (h *AcademyHandler) ListTutors(c *fiber.Ctx) error {
	tutors, meta, err := h.academySvc.ListTutors(listRequest(c))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{"tutors": tutors, "meta": meta})
}

// @Summary Create Tutor
// @Tags academy
// @Accept json
// @Produce json
// @Security Bearer
// @Param tutor body dto.TutorRequest true "Tutor fields"
// @Success 201 {object} shared.Response{data=model.Tutor}
// @Router /api/v1/tutors [post]
func (h *AcademyHandler) CreateTutor(c *fiber.Ctx) error {
	var req dto.TutorRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	tutor, err := h.academySvc.CreateTutor(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Tutor created", tutor)
}

// @Summary Update Tutor
// @Tags academy
// @Accept json
// @Produce json
// @Security Bearer
// @Param tutorId path string true "Tutor ID"
// @Param tutor body dto.TutorRequest true "Tutor fields"
// @Success 200 {object} shared.Response{data=model.Tutor}
// @Router /api/v1/tutors/{tutorId} [put]
func (h *AcademyHandler) UpdateTutor(c *fiber.Ctx) error {
	var req dto.TutorRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	tutor, err := h.academySvc.UpdateTutor(c.Params("tutorId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Tutor updated", tutor)
}

// @Summary Delete Tutor
// @Tags academy
// @Produce json
// @Security Bearer
// @Param tutorId path string true "Tutor ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/tutors/{tutorId} [delete]
func (h *AcademyHandler) DeleteTutor(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.academySvc.DeleteTutor(c.Params("tutorId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Tutor deleted", "deleted")
}

// ==================== BROADCASTS ====================

// @Summary List Broadcasts
// @Tags academy
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Subject search"
// @Success 200 {object} shared.Response{data=[]model.Broadcast}
// @Router /api/v1/broadcasts [get]
func (h *AcademyHandler) ListBroadcasts(c *fiber.Ctx) error {
	broadcasts, meta, err := h.academySvc.ListBroadcasts(listRequest(c))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{"broadcasts": broadcasts, "meta": meta})
}

// @Summary Create Broadcast
// @Description Draft an announcement for a cohort
// @Tags academy
// @Accept json
// @Produce json
// @Security Bearer
// @Param broadcast body dto.BroadcastRequest true "Broadcast fields"
// @Success 201 {object} shared.Response{data=model.Broadcast}
// @Router /api/v1/broadcasts [post]
func (h *AcademyHandler) CreateBroadcast(c *fiber.Ctx) error {
	var req dto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	broadcast, err := h.academySvc.CreateBroadcast(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Broadcast created", broadcast)
}

// @Summary Send Broadcast
// @Description Email a draft broadcast to every active student in its cohort
// @Tags academy
// @Produce json
// @Security Bearer
// @Param broadcastId path string true "Broadcast ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=dto.BroadcastResponse}
// @Router /api/v1/broadcasts/{broadcastId}/send [post]
func (h *AcademyHandler) SendBroadcast(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}

	broadcast, sent, err := h.academySvc.SendBroadcast(c.Params("broadcastId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Broadcast sent", broadcastResponse(broadcast, sent))
}

// @Summary Delete Broadcast
// @Tags academy
// @Produce json
// @Security Bearer
// @Param broadcastId path string true "Broadcast ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/broadcasts/{broadcastId} [delete]
func (h *AcademyHandler) DeleteBroadcast(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.academySvc.DeleteBroadcast(c.Params("broadcastId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Broadcast deleted", "deleted")
}

func broadcastResponse(b *model.Broadcast, recipients int) dto.BroadcastResponse {
	return dto.BroadcastResponse{
		ID:         b.ID,
		Subject:    b.Subject,
		Body:       b.Body,
		CohortID:   b.CohortID,
		Status:     b.Status,
		SentAt:     b.SentAt,
		Recipients: recipients,
		CreatedAt:  b.CreatedAt,
	}
}
