package handlers

import (
	"errors"

	"tritech-assistant/internal/dto"
	"tritech-assistant/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	queryService *service.QueryService
	logger       *zap.Logger
}

func NewChatHandler(queryService *service.QueryService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		queryService: queryService,
		logger:       logger,
	}
}

// Chat godoc
// @Summary Ask a question
// @Description Answer a free-text question from local knowledge or the AI escalation path
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question and optional force mode (auto, local, ai)"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JSON in request body",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	answer, err := h.queryService.Handle(c.Context(), req.Message, service.ParseForceMode(req.ForceMode))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(dto.ChatResponse{
		Response:      answer.Content,
		Source:        string(answer.Source),
		Confidence:    string(answer.Confidence),
		RelatedTopics: answer.RelatedTopics,
		MatchSignals:  answer.MatchSignals,
	})
}

// errorResponse maps the error taxonomy to HTTP statuses. Anything
// unclassified becomes a generic 500 without internal detail.
func (h *ChatHandler) errorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message cannot be empty",
		})
	}

	var gwErr *service.GatewayError
	if errors.As(err, &gwErr) {
		switch gwErr.Kind {
		case service.FailureTimeout:
			return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
				"error": "Request timeout. Please try again.",
			})
		case service.FailureAuth, service.FailureNotConfigured:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Service temporarily unavailable",
			})
		case service.FailureBusy:
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Service temporarily busy. Please try again.",
			})
		case service.FailureMalformed:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Upstream service returned an unexpected response",
			})
		}
	}

	h.logger.Error("Unhandled chat error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An error occurred processing your request. Please try again.",
	})
}
