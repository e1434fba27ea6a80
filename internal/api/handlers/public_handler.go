package handlers

import (
	"errors"

	"saicollege/internal/dto"
	"saicollege/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PublicHandler struct {
	knowledge       *service.KnowledgeService
	feedbackService *service.FeedbackService
	uploadService   *service.UploadService
	logger          *zap.Logger
}

func NewPublicHandler(
	knowledge *service.KnowledgeService,
	feedbackService *service.FeedbackService,
	uploadService *service.UploadService,
	logger *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		knowledge:       knowledge,
		feedbackService: feedbackService,
		uploadService:   uploadService,
		logger:          logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags public
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *PublicHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}

// CollegeInfo godoc
// @Summary College contact details
// @Tags public
// @Produce json
// @Success 200 {object} dto.CollegeInfoResponse
// @Router /api/college-info [get]
func (h *PublicHandler) CollegeInfo(c *fiber.Ctx) error {
	kb := h.knowledge.Snapshot()
	return c.JSON(dto.CollegeInfoResponse{
		Name:    kb.Name,
		Address: kb.Address,
		Phone:   kb.Phone,
		Email:   kb.Email,
		Website: kb.Website,
		MapLink: kb.MapLink,
	})
}

// Courses godoc
// @Summary Course catalogue
// @Description Courses by level, in the order the admin stored them.
// @Tags public
// @Produce json
// @Success 200 {object} dto.CoursesResponse
// @Router /api/courses [get]
func (h *PublicHandler) Courses(c *fiber.Ctx) error {
	kb := h.knowledge.Snapshot()
	return c.JSON(dto.CoursesResponse{
		Undergraduate: kb.UGCourses,
		Postgraduate:  kb.PGCourses,
		Diploma:       kb.DiplomaCourses,
	})
}

// Facilities godoc
// @Summary Campus facilities
// @Tags public
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/facilities [get]
func (h *PublicHandler) Facilities(c *fiber.Ctx) error {
	facilities := h.knowledge.Snapshot().Facilities
	if facilities == nil {
		facilities = map[string]string{}
	}
	return c.JSON(facilities)
}

// GalleryImages godoc
// @Summary Gallery images
// @Description Images in the gallery folder, newest first, with a category guessed from the file name.
// @Tags public
// @Produce json
// @Success 200 {array} models.GalleryImage
// @Router /api/gallery-images [get]
func (h *PublicHandler) GalleryImages(c *fiber.Ctx) error {
	images, err := h.uploadService.GalleryImages(c.Context())
	if err != nil {
		h.logger.Error("Failed to read gallery", zap.Error(err))
		return c.JSON([]any{})
	}
	return c.JSON(images)
}

// Syllabus godoc
// @Summary Syllabus and notes PDFs
// @Tags public
// @Produce json
// @Success 200 {object} dto.SyllabusListResponse
// @Router /api/syllabus [get]
func (h *PublicHandler) Syllabus(c *fiber.Ctx) error {
	files, err := h.uploadService.ListSyllabus(c.Context())
	if err != nil {
		h.logger.Error("Failed to list syllabus", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list files",
		})
	}
	return c.JSON(dto.SyllabusListResponse{Files: files})
}

// SubmitFeedback godoc
// @Summary Leave feedback
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} map[string]string
// @Router /feedback [post]
func (h *PublicHandler) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No JSON received",
		})
	}

	if _, err := h.feedbackService.Submit(c.Context(), req.Type, req.Message, req.Rating); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing fields",
			})
		}
		h.logger.Error("Failed to save feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save feedback",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
