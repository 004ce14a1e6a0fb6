// Package app assembles repositories, services and handlers into the
// dashboard's Fiber application.
package app

import (
	"time"

	"dashboard/internal/config"
	"dashboard/internal/handlers"
	"dashboard/internal/middleware"
	"dashboard/internal/repositories"
	"dashboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options are the external resources the application runs on. Publisher
// and ImageStore are optional.
type Options struct {
	Config     config.Config
	DB         *gorm.DB
	Logger     *zap.Logger
	Publisher  services.EventPublisher
	ImageStore services.ImageStore
	// AccessLog enables Fiber's per-request log line.
	AccessLog bool
}

// Server is the assembled application.
type Server struct {
	App      *fiber.App
	Auth     *services.AuthService
	Activity *services.ActivityService
}

// New wires every route under /api.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	countryRepo := repositories.NewGORMCountryRepository(opts.DB)
	productRepo := repositories.NewGORMProductRepository(opts.DB)
	appearanceRepo := repositories.NewGORMAppearanceRepository(opts.DB)
	paymentRepo := repositories.NewGORMPaymentSettingsRepository(opts.DB)
	activityRepo := repositories.NewGORMActivityLogRepository(opts.DB)
	adminRepo := repositories.NewGORMAdminRepository(opts.DB)

	activityService := services.NewActivityService(activityRepo, opts.Publisher, log)
	authService := services.NewAuthService(adminRepo, opts.Config.JWTSecret, opts.Config.TokenTTL)
	countryService := services.NewCountryService(countryRepo)
	productService := services.NewProductService(productRepo, countryRepo,
		services.NewStaticRates(opts.Config.CurrencyRates), opts.Config.DefaultCurrency)
	appearanceService := services.NewAppearanceService(appearanceRepo)
	paymentService := services.NewPaymentSettingsService(paymentRepo)
	imageService := services.NewImageService(opts.ImageStore)

	app := fiber.New(fiber.Config{
		AppName:   "dashboard",
		BodyLimit: 12 << 20,
	})
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		status, code := "healthy", fiber.StatusOK
		if sqlDB, err := opts.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status, code = "degraded", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"rabbitMQ": opts.Publisher != nil,
		})
	})

	api := app.Group("/api")
	authRequired := middleware.AuthRequired(authService, log)

	handlers.NewAuthHandler(authService, activityService, log).RegisterRoutes(api)
	handlers.NewCountryHandler(countryService, activityService, log).RegisterRoutes(api, authRequired)
	handlers.NewProductHandler(productService, activityService, log).RegisterRoutes(api, authRequired)
	handlers.NewAppearanceHandler(appearanceService, activityService, log).RegisterRoutes(api, authRequired)
	handlers.NewPaymentSettingsHandler(paymentService, activityService, log).RegisterRoutes(api, authRequired)
	handlers.NewUploadHandler(imageService, activityService, log).RegisterRoutes(api, authRequired)
	handlers.NewActivityHandler(activityService, log).RegisterRoutes(api, authRequired)

	return &Server{
		App:      app,
		Auth:     authService,
		Activity: activityService,
	}
}
