package handlers

import (
	"saicollege/internal/chatbot"
	"saicollege/internal/dto"
	"saicollege/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

const languageKey = "language"

type ChatHandler struct {
	chatService *service.ChatService
	sessions    *session.Store
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, sessions *session.Store, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the chatbot
// @Description Answers a visitor message from the college knowledge base. Unanswered messages are queued for admin review.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	res := h.chatService.Ask(c.Context(), req.Message, h.language(c), c.Get(fiber.HeaderUserAgent))

	return c.JSON(dto.ChatResponse{Response: res.Text})
}

// SetLanguage godoc
// @Summary Select reply language
// @Description Stores Hindi, English or Hinglish for the visitor session and returns a welcome message in it.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.SetLanguageRequest true "Language"
// @Success 200 {object} dto.SuccessResponse
// @Router /set-language [post]
func (h *ChatHandler) SetLanguage(c *fiber.Ctx) error {
	var req dto.SetLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid language request, using default", zap.Error(err))
	}
	lang := chatbot.ParseLanguage(req.Language)

	sess, err := h.sessions.Get(c)
	if err != nil {
		h.logger.Warn("Failed to load session", zap.Error(err))
	} else {
		sess.Set(languageKey, string(lang))
		if err := sess.Save(); err != nil {
			h.logger.Warn("Failed to save session", zap.Error(err))
		}
	}

	return c.JSON(dto.SuccessResponse{
		Success: true,
		Message: chatbot.WelcomeMessage(lang),
	})
}

func (h *ChatHandler) language(c *fiber.Ctx) chatbot.Language {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return chatbot.DefaultLanguage
	}
	if v, ok := sess.Get(languageKey).(string); ok {
		return chatbot.ParseLanguage(v)
	}
	return chatbot.DefaultLanguage
}
