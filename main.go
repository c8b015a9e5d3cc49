package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helix/app"
	"helix/config"
	"helix/database"
	"helix/handlers"
	"helix/middleware"
	"helix/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	// Initialize SQLite database
	db, err := database.New(config.AppConfig.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialized", "path", config.AppConfig.DBPath)

	// Start login-session cleanup
	sessionStore := session.NewStore()
	sessionStore.StartCleanupRoutine()
	logger.Info("session cleanup routine started")

	application := app.New(db, sessionStore, logger)

	server := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
		ReadBufferSize:        8192,
	})

	server.Use(
		recover.New(),
		middleware.RequestLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     config.GetEnv("CORS_ORIGINS", "*"),
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	server.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	server.Post("/api/auth/login", handlers.Login(application))
	server.Post("/api/auth/logout", handlers.Logout(application))
	server.Get("/api/auth/me", handlers.Me(application))

	api := server.Group("/api",
		middleware.AuthRequired(sessionStore, application.Users),
		limiter.New(limiter.Config{
			Max:        100,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				if userID, ok := c.Locals("userID").(string); ok {
					return "user:" + userID
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded for your account",
				})
			},
		}))

	api.Get("/users", handlers.GetUsers(application))
	api.Get("/users/google/:googleId", handlers.GetUserByGoogleID(application))
	api.Get("/users/:id", handlers.GetUser(application))
	api.Post("/users", handlers.CreateUser(application))
	api.Put("/users/:id", handlers.UpdateUser(application))
	api.Delete("/users/:id", handlers.DeleteUser(application))

	api.Get("/activities", handlers.GetActivities(application))
	api.Get("/activities/predefined", handlers.GetPredefinedActivities(application))
	api.Get("/activities/:id", handlers.GetActivity(application))
	api.Post("/activities", handlers.CreateActivity(application))
	api.Put("/activities/:id", handlers.UpdateActivity(application))
	api.Delete("/activities/:id", handlers.DeleteActivity(application))

	api.Get("/sessions", handlers.GetSessions(application))
	api.Get("/sessions/range", handlers.GetSessionsByDateRange(application))
	api.Get("/sessions/:id", handlers.GetSession(application))
	api.Post("/sessions", handlers.CreateSession(application))
	api.Put("/sessions/:id", handlers.UpdateSession(application))
	api.Delete("/sessions/:id", handlers.DeleteSession(application))

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := server.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
