package app

import (
	"log/slog"

	"helix/database"
	"helix/services"
	"helix/session"
	"helix/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB           *database.DB
	Users        *services.UserService
	Activities   *services.ActivityService
	Sessions     *services.SessionService
	Auth         *services.AuthService
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, sessionStore *session.Store, logger *slog.Logger) *App {
	data := database.Factory(db.NewDataService)

	return &App{
		DB:           db,
		Users:        services.NewUserService(data),
		Activities:   services.NewActivityService(data),
		Sessions:     services.NewSessionService(data),
		Auth:         services.NewAuthService(data, sessionStore),
		SessionStore: sessionStore,
		Validator:    validator.New(),
		Logger:       logger,
	}
}
