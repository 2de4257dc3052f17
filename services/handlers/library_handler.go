package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/shared"
)

type LibraryHandler struct {
	librarySvc LibraryServiceInterface
}

func NewLibraryHandler(librarySvc LibraryServiceInterface) *LibraryHandler {
	return &LibraryHandler{librarySvc: librarySvc}
}

// @Summary Browse Library
// @Description List one folder level of the media library; backs the builder's picker
// @Tags library
// @Produce json
// @Security Bearer
// @Param folder_id query string false "Folder ID (empty for root)"
// @Success 200 {object} shared.Response{data=dto.LibraryBrowseResponse}
// @Router /api/v1/library [get]
func (h *LibraryHandler) Browse(c *fiber.Ctx) error {
	resp, err := h.librarySvc.Browse(c.Query("folder_id"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Create Folder
// @Tags library
// @Accept json
// @Produce json
// @Security Bearer
// @Param folder body dto.FolderRequest true "Folder fields"
// @Success 201 {object} shared.Response{data=model.MediaFolder}
// @Router /api/v1/library/folders [post]
func (h *LibraryHandler) CreateFolder(c *fiber.Ctx) error {
	var req dto.FolderRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	folder, err := h.librarySvc.CreateFolder(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "Folder created", folder)
}

// @Summary Delete Folder
// @Description Delete a folder and its file records
// @Tags library
// @Produce json
// @Security Bearer
// @Param folderId path string true "Folder ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/library/folders/{folderId} [delete]
func (h *LibraryHandler) DeleteFolder(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.librarySvc.DeleteFolder(c.Params("folderId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Folder deleted", "deleted")
}

// @Summary Upload Library File
// @Description Upload an asset straight into the library; the picker hands out its durable URL
// @Tags library
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param folder_id query string false "Target folder ID"
// @Param file formData file true "Asset binary"
// @Success 201 {object} shared.Response{data=dto.MediaFileResponse}
// @Router /api/v1/library/files [post]
func (h *LibraryHandler) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "No file provided")
	}

	resp, err := h.librarySvc.UploadFile(c.Context(), c.Query("folder_id"), file)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusCreated, "File uploaded", resp)
}

// @Summary Get Library File
// @Tags library
// @Produce json
// @Security Bearer
// @Param fileId path string true "File ID"
// @Success 200 {object} shared.Response{data=model.MediaFile}
// @Router /api/v1/library/files/{fileId} [get]
func (h *LibraryHandler) GetFile(c *fiber.Ctx) error {
	file, err := h.librarySvc.GetFile(c.Params("fileId"))
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", file)
}

// @Summary Delete Library File
// @Tags library
// @Produce json
// @Security Bearer
// @Param fileId path string true "File ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/library/files/{fileId} [delete]
func (h *LibraryHandler) DeleteFile(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	if err := h.librarySvc.DeleteFile(c.Params("fileId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "File deleted", "deleted")
}
