package api

import (
	"tritech-assistant/docs"
	"tritech-assistant/internal/api/handlers"
	"tritech-assistant/pkg/middleware"
	"tritech-assistant/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	adminHandler *handlers.AdminHandler,
	limiter *ratelimit.Limiter,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			appLogger.Error("Request failed", zap.Int("status", code), zap.Error(err))
			return c.Status(code).JSON(fiber.Map{
				"error": "An error occurred processing your request. Please try again.",
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the spec through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", healthHandler.Health)
	app.Post("/chat", middleware.RateLimitMiddleware(limiter, appLogger), chatHandler.Chat)
	app.Post("/admin/reload", adminHandler.Reload)

	return app
}
