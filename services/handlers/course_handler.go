package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/shared"
)

type CourseHandler struct {
	courseSvc CourseServiceInterface
}

func NewCourseHandler(courseSvc CourseServiceInterface) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// @Summary List Courses
// @Description Search the course catalog
// @Tags courses
// @Produce json
// @Security Bearer
// @Param query query string false "Title search"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter" Enums(draft, published, archived)
// @Param limit query int false "Max results"
// @Success 200 {object} shared.Response{data=dto.CourseCollectionResponse}
// @Router /api/v1/courses [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	req := dto.CourseSearchRequest{
		Query:    c.Query("query"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    c.QueryInt("limit", 50),
	}

	courses, err := h.courseSvc.ListCourses(req)
	if err != nil {
		return err
	}

	resp := dto.CourseCollectionResponse{
		Courses: make([]dto.CourseResponse, 0, len(courses)),
		Total:   len(courses),
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.CourseResponse{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
			Category:    course.Category,
			Level:       course.Level,
			Price:       course.Price,
			ImageURL:    course.ImageURL,
			VideoURL:    course.VideoURL,
			Status:      course.Status,
			TutorID:     course.TutorID,
			CreatedAt:   course.CreatedAt,
		})
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Get Course
// @Description Fetch one course's catalog fields
// @Tags courses
// @Produce json
// @Security Bearer
// @Param courseId path string true "Course ID"
// @Success 200 {object} shared.Response{data=model.Course}
// @Router /api/v1/courses/{courseId} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.courseSvc.GetCourse(c.Params("courseId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", course)
}

// @Summary Create Course
// @Description Create a new draft course
// @Tags courses
// @Accept json
// @Produce json
// @Security Bearer
// @Param course body dto.CreateCourseRequest true "Course fields"
// @Success 201 {object} shared.Response{data=model.Course}
// @Router /api/v1/courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	tutorID := req.TutorID
	if tutorID == "" {
		tutorID, _ = c.Locals(shared.UserID).(string)
	}

	course, err := h.courseSvc.CreateCourse(tutorID, req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Course created", course)
}

// @Summary Update Course
// @Description Update a course's catalog fields
// @Tags courses
// @Accept json
// @Produce json
// @Security Bearer
// @Param courseId path string true "Course ID"
// @Param course body dto.UpdateCourseRequest true "Course fields"
// @Success 200 {object} shared.Response{data=model.Course}
// @Router /api/v1/courses/{courseId} [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	course, err := h.courseSvc.UpdateCourse(c.Params("courseId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Course updated", course)
}

// @Summary Delete Course
// @Description Delete a course and its stored curriculum
// @Tags courses
// @Produce json
// @Security Bearer
// @Param courseId path string true "Course ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/courses/{courseId} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.courseSvc.DeleteCourse(c.Params("courseId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Course deleted", "deleted")
}
