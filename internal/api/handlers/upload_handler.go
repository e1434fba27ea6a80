package handlers

import (
	"errors"
	"strings"

	"saicollege/internal/dto"
	"saicollege/internal/models"
	"saicollege/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploadService *service.UploadService
	logger        *zap.Logger
}

func NewUploadHandler(uploadService *service.UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        logger,
	}
}

// UploadPDF godoc
// @Summary Upload a syllabus or notes PDF
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "PDF file"
// @Param course formData string false "Course name" default(General)
// @Param semester formData string false "Semester" default(N/A)
// @Param category formData string false "syllabus or notes" default(syllabus)
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.SuccessResponse
// @Router /admin/upload-pdf [post]
func (h *UploadHandler) UploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "No file selected"})
	}

	category := models.CategorySyllabus
	if models.SyllabusCategory(c.FormValue("category")) == models.CategoryNotes {
		category = models.CategoryNotes
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Failed to open file"})
	}
	defer src.Close()

	_, err = h.uploadService.UploadSyllabus(c.Context(), src, service.SyllabusUpload{
		Filename: file.Filename,
		Course:   c.FormValue("course"),
		Semester: c.FormValue("semester"),
		Category: category,
	})
	if err != nil {
		return h.uploadError(c, err)
	}

	label := string(category)
	return c.JSON(dto.SuccessResponse{
		Success: true,
		Message: strings.ToUpper(label[:1]) + label[1:] + " Uploaded Successfully!",
	})
}

// ListPDFs godoc
// @Summary Uploaded PDFs that still exist on disk
// @Tags uploads
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SyllabusListResponse
// @Router /admin/pdfs [get]
func (h *UploadHandler) ListPDFs(c *fiber.Ctx) error {
	files, err := h.uploadService.ListSyllabus(c.Context())
	if err != nil {
		h.logger.Error("Failed to list PDFs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list files",
		})
	}
	return c.JSON(dto.SyllabusListResponse{Files: files})
}

// DeletePDF godoc
// @Summary Delete an uploaded PDF
// @Tags uploads
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.FilenameRequest true "File name"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.SuccessResponse
// @Failure 404 {object} dto.SuccessResponse
// @Router /admin/delete-pdf [post]
func (h *UploadHandler) DeletePDF(c *fiber.Ctx) error {
	var req dto.FilenameRequest
	if err := c.BodyParser(&req); err != nil || req.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Filename missing"})
	}

	if err := h.uploadService.DeleteSyllabus(c.Context(), req.Filename); err != nil {
		return h.uploadError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "File deleted successfully"})
}

// UploadGalleryImage godoc
// @Summary Upload a gallery image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param gallery_file formData file true "Image file"
// @Param category formData string false "campus, events, labs or sports" default(campus)
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.SuccessResponse
// @Router /admin/upload-gallery-image [post]
func (h *UploadHandler) UploadGalleryImage(c *fiber.Ctx) error {
	file, err := c.FormFile("gallery_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "No file part"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Failed to open file"})
	}
	defer src.Close()

	if _, err := h.uploadService.UploadGalleryImage(c.Context(), src, file.Filename, c.FormValue("category", "campus")); err != nil {
		return h.uploadError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Image Uploaded Successfully!"})
}

// DeleteGalleryImage godoc
// @Summary Delete a gallery image
// @Tags uploads
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.FilenameRequest true "File name"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.SuccessResponse
// @Router /admin/delete-gallery-image [post]
func (h *UploadHandler) DeleteGalleryImage(c *fiber.Ctx) error {
	var req dto.FilenameRequest
	if err := c.BodyParser(&req); err != nil || req.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Filename missing"})
	}

	if err := h.uploadService.DeleteGalleryImage(c.Context(), req.Filename); err != nil {
		return h.uploadError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *UploadHandler) uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidFilename):
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Invalid filename"})
	case errors.Is(err, service.ErrInvalidFile):
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Unsupported file type"})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.SuccessResponse{Message: "File not found"})
	}

	h.logger.Error("Upload operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.SuccessResponse{Message: "Server Error"})
}
