package handlers

import (
	"tritech-assistant/internal/dto"
	"tritech-assistant/internal/knowledge"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminHandler struct {
	dynamic *knowledge.DynamicProvider
	logger  *zap.Logger
}

func NewAdminHandler(dynamic *knowledge.DynamicProvider, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		dynamic: dynamic,
		logger:  logger,
	}
}

// Reload godoc
// @Summary Reload knowledge entries
// @Description Re-read the ingested knowledge entries and install a new snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ReloadResponse
// @Failure 500 {object} map[string]string
// @Router /admin/reload [post]
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	if err := h.dynamic.Reload(c.Context()); err != nil {
		h.logger.Error("Failed to reload knowledge entries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reload knowledge entries",
		})
	}

	return c.JSON(dto.ReloadResponse{
		Status:  "reloaded",
		Entries: h.dynamic.Len(),
	})
}
