package http

import (
	"time"

	"github.com/admaster/backend/internal/auth"
	"github.com/admaster/backend/internal/config"
	"github.com/admaster/backend/internal/http/handlers"
	"github.com/admaster/backend/internal/middleware"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	verifier *auth.ClerkVerifier,
	userSvc *services.UserService,
	userHandler *handlers.UserHandler,
	businessHandler *handlers.BusinessHandler,
	brandHandler *handlers.BrandHandler,
	campaignHandler *handlers.CampaignHandler,
	platformHandler *handlers.PlatformHandler,
	webhookHandler *handlers.WebhookHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Identity webhook (public, signature-verified)
	api.Post("/webhooks/clerk", webhookHandler.HandleClerk)

	api.Use(middleware.RateLimitMiddleware(rdb, 100, time.Minute, log))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(verifier, userSvc, log))

	// User
	protected.Get("/users/me", userHandler.GetMe)
	protected.Get("/users/me/profile", userHandler.GetProfile)
	protected.Put("/users/me/profile", userHandler.UpdateProfile)

	// Businesses
	protected.Post("/businesses", businessHandler.Create)
	protected.Get("/businesses", businessHandler.List)
	protected.Get("/businesses/check/has-business", businessHandler.HasBusiness)
	protected.Get("/businesses/:id", businessHandler.Get)
	protected.Put("/businesses/:id", businessHandler.Update)
	protected.Delete("/businesses/:id", businessHandler.Delete)

	// Brand profiles
	protected.Get("/brands/business/:businessID", brandHandler.Get)
	protected.Put("/brands/business/:businessID", brandHandler.Update)
	protected.Post("/brands/business/:businessID/complete", brandHandler.Complete)
	protected.Post("/brands/business/:businessID/crawl", brandHandler.Crawl)

	// Campaign groups
	protected.Get("/campaign/groups", campaignHandler.ListGroups)
	protected.Post("/campaign/groups/create", campaignHandler.CreateGroup)
	protected.Get("/campaign/groups/:id", campaignHandler.GetGroup)
	protected.Put("/campaign/groups/:id/status", campaignHandler.UpdateGroupStatus)

	// Platform catalog
	protected.Get("/platforms", platformHandler.List)
	protected.Get("/platforms/:platformID", platformHandler.Get)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
