package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"saicollege/internal/dto"
	"saicollege/internal/models"
	"saicollege/internal/service"
	"saicollege/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminHandler struct {
	authService     *service.AuthService
	knowledge       *service.KnowledgeService
	feedbackService *service.FeedbackService
	queryService    *service.QueryService
	secureCookie    bool
	logger          *zap.Logger
}

func NewAdminHandler(
	authService *service.AuthService,
	knowledge *service.KnowledgeService,
	feedbackService *service.FeedbackService,
	queryService *service.QueryService,
	secureCookie bool,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		knowledge:       knowledge,
		feedbackService: feedbackService,
		queryService:    queryService,
		secureCookie:    secureCookie,
		logger:          logger,
	}
}

// Login godoc
// @Summary Admin login
// @Description Checks the admin credentials and sets the admin token cookie. Five failed attempts from one address block it for a while.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.SuccessResponse
// @Failure 403 {object} dto.SuccessResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{
			Message: "Invalid request body",
		})
	}

	res, err := h.authService.Login(c.Context(), c.IP(), strings.TrimSpace(req.Username), strings.TrimSpace(req.Password))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTooManyAttempts):
			return c.Status(fiber.StatusForbidden).JSON(dto.SuccessResponse{
				Message: "Too many attempts. Try again later.",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.SuccessResponse{
				Message: "Invalid credentials",
			})
		}
		h.logger.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SuccessResponse{
			Message: "Server error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  time.Now().Add(res.ExpiresIn),
		Secure:   h.secureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{
		Success:   true,
		Token:     res.Token,
		TokenType: "Bearer",
		ExpiresIn: int64(res.ExpiresIn.Seconds()),
		Redirect:  "/admin",
	})
}

// CheckSession godoc
// @Summary Is the caller logged in as admin
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /admin/check-session [get]
func (h *AdminHandler) CheckSession(c *fiber.Ctx) error {
	token := middleware.TokenFromRequest(c)
	if token == "" {
		return c.JSON(dto.SessionResponse{})
	}
	_, err := h.authService.ValidateToken(token)
	return c.JSON(dto.SessionResponse{LoggedIn: err == nil})
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   h.secureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ResetPassword godoc
// @Summary Reset the admin password
// @Description Requires the secret code stored with the admin account.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Secret code and new password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.SuccessResponse
// @Router /admin/reset-password [post]
func (h *AdminHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{
			Message: "Invalid request body",
		})
	}

	err := h.authService.ResetPassword(c.Context(), c.IP(), strings.TrimSpace(req.SecretCode), strings.TrimSpace(req.NewPassword))
	switch {
	case err == nil:
		return c.JSON(dto.SuccessResponse{Success: true, Message: "Password updated successfully!"})
	case errors.Is(err, service.ErrInvalidSecret):
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Invalid Secret Code!"})
	case errors.Is(err, service.ErrEmptyPassword):
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "New password is required"})
	}

	h.logger.Error("Password reset failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.SuccessResponse{Message: "Server Error"})
}

// GetCollegeData godoc
// @Summary Current knowledge base
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CollegeDataResponse
// @Failure 401 {object} map[string]string
// @Router /admin/college-data [get]
func (h *AdminHandler) GetCollegeData(c *fiber.Ctx) error {
	return c.JSON(dto.CollegeDataResponse{
		Success: true,
		Data:    h.knowledge.Snapshot(),
	})
}

// SaveCollegeData godoc
// @Summary Replace the knowledge base
// @Description Saves the document (keeping a backup of the previous one) and serves it to new chat requests.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body models.KnowledgeBase true "Knowledge base"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.SuccessResponse
// @Failure 500 {object} dto.SuccessResponse
// @Router /admin/college-data [post]
func (h *AdminHandler) SaveCollegeData(c *fiber.Ctx) error {
	var kb models.KnowledgeBase
	if err := c.BodyParser(&kb); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{
			Message: "Invalid college data",
		})
	}

	if err := h.knowledge.Replace(c.Context(), &kb); err != nil {
		h.logger.Error("Failed to save college data", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SuccessResponse{
			Message: "Failed to save data.",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true, Message: "Data updated successfully!"})
}

// Feedback godoc
// @Summary Visitor feedback, newest first
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.FeedbackListResponse
// @Router /admin/feedback [get]
func (h *AdminHandler) Feedback(c *fiber.Ctx) error {
	list, err := h.feedbackService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to load feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error loading feedback",
		})
	}
	return c.JSON(dto.FeedbackListResponse{Feedback: list})
}

// UnknownQueries godoc
// @Summary Unresolved chat queries, newest first
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.QueryListResponse
// @Router /admin/unknown-queries [get]
func (h *AdminHandler) UnknownQueries(c *fiber.Ctx) error {
	list, err := h.queryService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to load unresolved queries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error loading queries",
		})
	}
	return c.JSON(dto.QueryListResponse{Queries: list})
}

// UpdateStatus godoc
// @Summary Change the status of a feedback entry or unresolved query
// @Description Index is the position in the list returned by the matching admin endpoint.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpdateStatusRequest true "Target and status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.SuccessResponse
// @Failure 404 {object} dto.SuccessResponse
// @Router /admin/update-status [post]
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Invalid request body"})
	}

	index, ok := parseIndex(req.Index)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Invalid index"})
	}

	var err error
	switch req.Type {
	case "feedback":
		err = h.feedbackService.UpdateStatus(c.Context(), index, req.Status)
	case "query":
		err = h.queryService.UpdateStatus(c.Context(), index, req.Status)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Message: "Invalid type"})
	}

	if errors.Is(err, service.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.SuccessResponse{Message: "Item not found"})
	}
	if err != nil {
		h.logger.Error("Failed to update status", zap.String("type", req.Type), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SuccessResponse{Message: "Server error"})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// Stats godoc
// @Summary Dashboard counters for unresolved queries
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} service.Stats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.queryService.Stats(c.Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error loading stats",
		})
	}
	return c.JSON(stats)
}

// parseIndex accepts a non-negative JSON number or a string of digits.
func parseIndex(v any) (int, bool) {
	switch idx := v.(type) {
	case float64:
		if idx < 0 || idx != float64(int(idx)) {
			return 0, false
		}
		return int(idx), true
	case string:
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
