package handlers

import (
	"time"

	"tritech-assistant/internal/dto"
	"tritech-assistant/internal/knowledge"
	"tritech-assistant/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	gateway service.AIGateway
	dynamic *knowledge.DynamicProvider
}

func NewHealthHandler(gateway service.AIGateway, dynamic *knowledge.DynamicProvider) *HealthHandler {
	return &HealthHandler{
		gateway: gateway,
		dynamic: dynamic,
	}
}

// Health godoc
// @Summary Service health
// @Description Report whether the AI gateway is configured and how many knowledge entries are loaded
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	gatewayStatus := "not_configured"
	if h.gateway.Configured() {
		gatewayStatus = "configured"
	}

	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: dto.HealthServices{
			AIGateway:        gatewayStatus,
			KnowledgeEntries: h.dynamic.Len(),
		},
	})
}
