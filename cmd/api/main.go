package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/auth"
	"github.com/admaster/backend/internal/config"
	"github.com/admaster/backend/internal/crawler"
	"github.com/admaster/backend/internal/db"
	"github.com/admaster/backend/internal/events"
	apphttp "github.com/admaster/backend/internal/http"
	"github.com/admaster/backend/internal/http/handlers"
	"github.com/admaster/backend/internal/repositories"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	businessRepo := repositories.NewBusinessRepo(pool)
	brandRepo := repositories.NewBrandRepo(pool)
	platformRepo := repositories.NewPlatformRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Crawling
	pageFetcher := crawler.NewFetcher(time.Duration(cfg.FetchTimeoutMS) * time.Millisecond)
	crawlFetcher := crawler.NewFetcher(time.Duration(cfg.CrawlTimeoutMS) * time.Millisecond)
	siteCrawler := crawler.NewSiteCrawler(crawlFetcher, cfg.CrawlMaxPages, cfg.CrawlMaxDepth,
		time.Duration(cfg.CrawlDelayMS)*time.Millisecond, cfg.CrawlRespectRobots, log)

	// Services
	geminiClient := services.NewGeminiClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, log)
	analyzer := services.NewAnalyzer(geminiClient, log)
	userService := services.NewUserService(userRepo, log)
	businessService := services.NewBusinessService(businessRepo, log)
	brandService := services.NewBrandService(brandRepo, businessService, pageFetcher, publisher, log)
	platformService := services.NewPlatformService(platformRepo, log)
	campaignService := services.NewCampaignService(campaignRepo, platformRepo, businessService,
		brandService, siteCrawler, analyzer, publisher, cfg, log)

	// Auth
	verifier := auth.NewClerkVerifier(cfg.ClerkJWKSURL, cfg.ClerkSkipVerify)

	// Handlers
	userHandler := handlers.NewUserHandler(userService, businessService, log)
	businessHandler := handlers.NewBusinessHandler(businessService, log)
	brandHandler := handlers.NewBrandHandler(brandService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	platformHandler := handlers.NewPlatformHandler(platformService, log)
	webhookHandler := handlers.NewWebhookHandler(cfg, userService, log)
	wsHub := handlers.NewWSHub(verifier, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})

	apphttp.SetupRouter(app, cfg, log, rdb, verifier, userService,
		userHandler, businessHandler, brandHandler, campaignHandler,
		platformHandler, webhookHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

// errorHandler serializes every error crossing the HTTP boundary into the
// uniform error envelope.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperr.As(err); ok {
			if appErr.Status >= fiber.StatusInternalServerError {
				log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(appErr.Status).JSON(fiber.Map{"error": appErr})
		}
		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiber.Map{
				"message":     fiberErr.Message,
				"code":        "HTTP_ERROR",
				"status_code": fiberErr.Code,
			}})
		}

		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		internal := apperr.Internal("", nil)
		return c.Status(internal.Status).JSON(fiber.Map{"error": internal})
	}
}
