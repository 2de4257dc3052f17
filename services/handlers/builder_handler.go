package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/shared"
)

type BuilderHandler struct {
	builderSvc BuilderServiceInterface
	meetSvc    MeetServiceInterface
}

func NewBuilderHandler(builderSvc BuilderServiceInterface, meetSvc MeetServiceInterface) *BuilderHandler {
	return &BuilderHandler{
		builderSvc: builderSvc,
		meetSvc:    meetSvc,
	}
}

// requireConfirm guards destructive endpoints. The client sets
// confirm=true only after the operator accepted the dialog; a cancelled
// dialog never produces a request.
func requireConfirm(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return shared.NewBadRequestError(nil, "Destructive action requires confirm=true")
	}
	return nil
}

// @Summary Open Builder Session
// @Description Open (or resume) the curriculum builder for a course
// @Tags builder
// @Produce json
// @Security Bearer
// @Param courseId path string true "Course ID"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/courses/{courseId}/builder [post]
func (h *BuilderHandler) StartSession(c *fiber.Ctx) error {
	resp, err := h.builderSvc.StartSession(c.Params("courseId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Builder session ready", resp)
}

// @Summary Get Builder Session
// @Description Fetch the current state of a builder session
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId} [get]
func (h *BuilderHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.builderSvc.GetSession(c.Params("sessionId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Close Builder Session
// @Description Discard a builder session and its unsaved changes
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/builder/{sessionId} [delete]
func (h *BuilderHandler) CloseSession(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.builderSvc.CloseSession(c.Params("sessionId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Session closed", "closed")
}

// ==================== STAGE FLOW ====================

// @Summary Advance Stage
// @Description Move the builder to the next stage (setup, content, review)
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/next [post]
func (h *BuilderHandler) NextStage(c *fiber.Ctx) error {
	resp, err := h.builderSvc.NextStage(c.Params("sessionId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Step Back a Stage
// @Description Move the builder to the previous stage
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/back [post]
func (h *BuilderHandler) BackStage(c *fiber.Ctx) error {
	resp, err := h.builderSvc.BackStage(c.Params("sessionId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// ==================== COURSE SETTINGS ====================

// @Summary Update Course Settings
// @Description Update the session's course description, cover image and intro video
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param settings body dto.CourseSettingsRequest true "Course settings"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/settings [put]
func (h *BuilderHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.CourseSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.builderSvc.UpdateSettings(c.Params("sessionId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Settings updated", resp)
}

// ==================== TOPICS ====================

// @Summary Add Topic
// @Description Append a new topic to the curriculum
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topic body dto.TopicRequest true "Topic fields"
// @Success 201 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics [post]
func (h *BuilderHandler) AddTopic(c *fiber.Ctx) error {
	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.builderSvc.AddTopic(c.Params("sessionId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Topic added", resp)
}

// @Summary Update Topic
// @Description Replace a topic's title and summary
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Param topic body dto.TopicRequest true "Topic fields"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId} [put]
func (h *BuilderHandler) UpdateTopic(c *fiber.Ctx) error {
	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.builderSvc.UpdateTopic(c.Params("sessionId"), c.Params("topicId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Topic updated", resp)
}

// @Summary Duplicate Topic
// @Description Deep-copy a topic and all its items with fresh ids
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Success 201 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId}/duplicate [post]
func (h *BuilderHandler) DuplicateTopic(c *fiber.Ctx) error {
	resp, err := h.builderSvc.DuplicateTopic(c.Params("sessionId"), c.Params("topicId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Topic duplicated", resp)
}

// @Summary Delete Topic
// @Description Delete a topic and every item under it
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId} [delete]
func (h *BuilderHandler) DeleteTopic(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	resp, err := h.builderSvc.DeleteTopic(c.Params("sessionId"), c.Params("topicId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Topic deleted", resp)
}

// @Summary Toggle Topic Expansion
// @Description Flip a topic's expanded/collapsed view state
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId}/toggle [post]
func (h *BuilderHandler) ToggleExpanded(c *fiber.Ctx) error {
	resp, err := h.builderSvc.ToggleExpanded(c.Params("sessionId"), c.Params("topicId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// ==================== FOCUS ====================

// @Summary Set Editing Focus
// @Description Move the single editing cursor; opening one editor closes any other
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param focus body dto.FocusRequest true "Focus target"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/focus [put]
func (h *BuilderHandler) SetFocus(c *fiber.Ctx) error {
	var req dto.FocusRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.builderSvc.SetFocus(c.Params("sessionId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// ==================== ITEMS ====================

// @Summary Save Content Item
// @Description Submit an item editor's payload; lands as an in-place edit or an append depending on the cursor
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Param item body dto.SaveItemRequest true "Item payload"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId}/items [post]
func (h *BuilderHandler) SaveItem(c *fiber.Ctx) error {
	var req dto.SaveItemRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.builderSvc.SaveItem(c.Params("sessionId"), c.Params("topicId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Item saved", resp)
}

// @Summary Duplicate Item
// @Description Clone an item with a fresh id and a " (Copy)" title suffix
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Param itemId path string true "Item ID"
// @Success 201 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId}/items/{itemId}/duplicate [post]
func (h *BuilderHandler) DuplicateItem(c *fiber.Ctx) error {
	resp, err := h.builderSvc.DuplicateItem(c.Params("sessionId"), c.Params("topicId"), c.Params("itemId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Item duplicated", resp)
}

// @Summary Delete Item
// @Description Remove one content item from its topic
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Param itemId path string true "Item ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId}/items/{itemId} [delete]
func (h *BuilderHandler) DeleteItem(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	resp, err := h.builderSvc.DeleteItem(c.Params("sessionId"), c.Params("topicId"), c.Params("itemId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Item deleted", resp)
}

// @Summary Reorder Items
// @Description Move an item from one position to another within its topic (drag path)
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Param reorder body dto.ReorderRequest true "Source and target positions"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId}/reorder [put]
func (h *BuilderHandler) ReorderItem(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.builderSvc.ReorderItem(c.Params("sessionId"), c.Params("topicId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Nudge Item
// @Description Move an item one position up or down (keyboard path)
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param topicId path string true "Topic ID"
// @Param itemId path string true "Item ID"
// @Param move body dto.MoveStepRequest true "Direction"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/topics/{topicId}/items/{itemId}/move [put]
func (h *BuilderHandler) MoveItemStep(c *fiber.Ctx) error {
	var req dto.MoveStepRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.builderSvc.MoveItemStep(c.Params("sessionId"), c.Params("topicId"), c.Params("itemId"), req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// ==================== ASSETS ====================

// @Summary Stage Asset
// @Description Buffer an attached binary for upload during save; returns the staging key
// @Tags builder
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param kind query string true "Asset kind" Enums(video, image, document)
// @Param file formData file true "Asset binary"
// @Success 201 {object} shared.Response{data=dto.StageAssetResponse}
// @Router /api/v1/builder/{sessionId}/assets [post]
func (h *BuilderHandler) StageAsset(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "No file provided")
	}

	resp, err := h.builderSvc.StageAsset(c.Params("sessionId"), c.Query("kind", "document"), file)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Asset staged", resp)
}

// @Summary Discard Staged Asset
// @Description Drop a staged binary the operator removed before saving
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Param key path string true "Staging key"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/builder/{sessionId}/assets/{key} [delete]
func (h *BuilderHandler) DiscardAsset(c *fiber.Ctx) error {
	if err := h.builderSvc.DiscardAsset(c.Params("sessionId"), c.Params("key")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Asset discarded", "discarded")
}

// ==================== SAVE ====================

// @Summary Save Curriculum
// @Description Upload staged binaries sequentially, reshape the tree, and persist in one request
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.BuilderSessionResponse}
// @Router /api/v1/builder/{sessionId}/save [post]
func (h *BuilderHandler) Save(c *fiber.Ctx) error {
	resp, err := h.builderSvc.Save(c.Context(), c.Params("sessionId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Curriculum saved", resp)
}

// @Summary Save Progress
// @Description Poll the save's sequential upload counter
// @Tags builder
// @Produce json
// @Security Bearer
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SaveProgressResponse}
// @Router /api/v1/builder/{sessionId}/progress [get]
func (h *BuilderHandler) Progress(c *fiber.Ctx) error {
	resp, err := h.builderSvc.Progress(c.Params("sessionId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// ==================== MEET LINKS ====================

// @Summary Generate Meeting Link
// @Description Generate a Google Meet link for a scheduled live class; requires a connected meeting account
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.GenerateMeetLinkRequest true "Live class schedule"
// @Success 200 {object} shared.Response{data=dto.GenerateMeetLinkResponse}
// @Router /api/v1/builder/meet-link [post]
func (h *BuilderHandler) GenerateMeetLink(c *fiber.Ctx) error {
	var req dto.GenerateMeetLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	userID, _ := c.Locals(shared.UserID).(string)
	link, err := h.meetSvc.GenerateLink(userID, req.Title, req.Date, req.Time)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Link generated", dto.GenerateMeetLinkResponse{Link: link})
}
