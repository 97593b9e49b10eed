package routes

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"habittracker/backend/config"
	"habittracker/backend/controllers"
	_ "habittracker/backend/docs"
	"habittracker/backend/metrics"
	"habittracker/backend/middleware"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

// NewApp builds the fiber application with the global middleware and every
// route mounted.
func NewApp(cfg *config.Config, svc *services.Services, logger *zap.Logger) *fiber.App {
	// Immutable: path params end up in the store and must not alias fasthttp buffers.
	app := fiber.New(fiber.Config{
		AppName:      "habit-tracker",
		ErrorHandler: errorHandler(logger),
		Immutable:    true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut,
			fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(middleware.MetricsMiddleware())

	SetupRoutes(app, cfg, svc, logger)
	return app
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.Error(c, fe.Code, fe.Message)
		}
		logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return utils.InternalServerError(c, "internal server error")
	}
}

func SetupRoutes(app *fiber.App, cfg *config.Config, svc *services.Services, logger *zap.Logger) {
	app.Get("/healthz", controllers.Health)
	app.Get("/metrics", metrics.Handler())
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	api := app.Group("/api")

	// Auth routes
	authController := controllers.NewAuthController(svc.Auth, logger)
	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/refresh", authController.Refresh)
	auth.Post("/forgot", authController.ForgotPassword)
	auth.Post("/reset", authController.ResetPassword)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware()

	// User routes
	userController := controllers.NewUserController(svc.Users, logger)
	users := api.Group("/users", authMiddleware)
	users.Get("/me", userController.GetProfile)
	users.Patch("/me", userController.UpdateProfile)
	users.Patch("/:id/role", adminMiddleware, userController.UpdateRole)

	// Habit routes; /export must precede /:habitId
	habitController := controllers.NewHabitController(svc.Habits, svc.Export, logger)
	habits := api.Group("/habits", authMiddleware)
	habits.Post("/", habitController.CreateHabit)
	habits.Get("/", habitController.ListHabits)
	habits.Get("/export", habitController.ExportHabits)
	habits.Get("/:habitId", habitController.GetHabit)
	habits.Put("/:habitId", habitController.UpdateHabit)
	habits.Delete("/:habitId", habitController.DeleteHabit)
	habits.Post("/:habitId/check", habitController.CheckHabit)
	habits.Get("/:habitId/streak", habitController.GetStreak)

	metricsController := controllers.NewMetricsController(svc.Metrics, logger)
	api.Get("/metrics", authMiddleware, metricsController.GetMetrics)

	// Category routes
	categoryController := controllers.NewCategoryController(svc.Categories, logger)
	categories := api.Group("/categories", authMiddleware)
	categories.Post("/", categoryController.CreateCategory)
	categories.Get("/", categoryController.ListCategories)
	categories.Get("/:id", categoryController.GetCategory)
	categories.Put("/:id", categoryController.UpdateCategory)
	categories.Delete("/:id", categoryController.DeleteCategory)

	// Notification routes
	notificationController := controllers.NewNotificationController(svc.Reminders, logger)
	notifications := api.Group("/notifications", authMiddleware)
	notifications.Post("/", notificationController.ScheduleReminder)
	notifications.Get("/", notificationController.ListReminders)
	notifications.Delete("/:id", deleteLimiter(), notificationController.DeleteReminder)
}

// deleteLimiter allows 20 deletions per client IP every 15 minutes.
func deleteLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        20,
		Expiration: 15 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return utils.Error(c, fiber.StatusTooManyRequests, "too many requests, try again later")
		},
	})
}
