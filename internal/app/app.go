// Package app assembles the HTTP application from its repositories,
// services and handlers.
package app

import (
	"context"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// healthTimeout bounds the database ping done by /health.
const healthTimeout = 2 * time.Second

// App is the wired HTTP application.
type App struct {
	Fiber *fiber.App
	Auth  *services.AuthService
}

// Option customizes the application.
type Option func(*options)

type options struct {
	authOpts      []services.AuthOption
	requestLogger bool
}

// WithAuthOptions passes options through to the AuthService.
func WithAuthOptions(opts ...services.AuthOption) Option {
	return func(o *options) { o.authOpts = append(o.authOpts, opts...) }
}

// WithoutRequestLog disables the per-request access log.
func WithoutRequestLog() Option {
	return func(o *options) { o.requestLogger = false }
}

// New wires repositories, services and handlers onto a fiber app.
// notifier may be nil.
func New(cfg config.Config, db *gorm.DB, log *zap.SugaredLogger, notifier services.MessageNotifier, opts ...Option) *App {
	o := options{requestLogger: true}
	for _, opt := range opts {
		opt(&o)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	projectRepo := repositories.NewGORMProjectRepository(db)
	skillRepo := repositories.NewGORMSkillRepository(db)
	messageRepo := repositories.NewGORMMessageRepository(db)
	certificateRepo := repositories.NewGORMCertificateRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, o.authOpts...)
	projectService := services.NewProjectService(projectRepo)
	skillService := services.NewSkillService(skillRepo)
	messageService := services.NewMessageService(messageRepo, notifier, log)
	certificateService := services.NewCertificateService(certificateRepo)
	dashboardService := services.NewDashboardService(projectRepo, skillRepo, messageRepo, certificateRepo)

	// --- Fiber ---
	app := fiber.New(fiber.Config{
		AppName:      "portfolio",
		ErrorHandler: handlers.NewErrorHandler(log, !cfg.IsProduction()),
	})
	app.Use(recover.New())
	if o.requestLogger {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		dbStatus := "up"
		if err := database.Ping(ctx, db); err != nil {
			log.Warnw("health check ping failed", "err", err)
			dbStatus = "down"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
		})
	})

	// --- API Routes ---
	api := app.Group("/api")
	gate := middleware.AdminRequired(authService)

	handlers.NewAuthHandler(authService, log).RegisterRoutes(api)
	handlers.NewProjectHandler(projectService).RegisterRoutes(api, gate)
	handlers.NewSkillHandler(skillService).RegisterRoutes(api, gate)
	handlers.NewMessageHandler(messageService).RegisterRoutes(api, gate)
	handlers.NewCertificateHandler(certificateService).RegisterRoutes(api, gate)
	handlers.NewDashboardHandler(dashboardService).RegisterRoutes(api, gate)

	return &App{Fiber: app, Auth: authService}
}
