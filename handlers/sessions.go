package handlers

import (
	"errors"
	"time"

	"helix/app"
	"helix/models"
	"helix/services"

	"github.com/gofiber/fiber/v2"
)

// GetSessions lists sessions, optionally filtered by user or activity
func GetSessions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			sessions []models.Session
			err      error
		)

		switch {
		case c.Query("user_id") != "":
			userID, ok := parseID(c.Query("user_id"))
			if !ok {
				return badRequest(c, "Invalid user_id")
			}
			sessions, err = a.Sessions.ListByUser(c.Context(), userID)
		case c.Query("activity_id") != "":
			activityID, ok := parseID(c.Query("activity_id"))
			if !ok {
				return badRequest(c, "Invalid activity_id")
			}
			sessions, err = a.Sessions.ListByActivity(c.Context(), activityID)
		default:
			sessions, err = a.Sessions.List(c.Context())
		}

		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch sessions", err)
		}
		return success(c, fiber.Map{"sessions": sessions})
	}
}

// GetSessionsByDateRange lists one user's sessions between two dates,
// inclusive on both bounds, ascending by date
func GetSessionsByDateRange(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c.Query("user_id"))
		if !ok {
			return badRequest(c, "Invalid user_id")
		}

		start, err := time.Parse(time.RFC3339, c.Query("start"))
		if err != nil {
			return badRequest(c, "start must be an RFC 3339 timestamp")
		}
		end, err := time.Parse(time.RFC3339, c.Query("end"))
		if err != nil {
			return badRequest(c, "end must be an RFC 3339 timestamp")
		}

		sessions, err := a.Sessions.ListByDateRange(c.Context(), userID, start, end)
		if err != nil {
			if errors.Is(err, services.ErrInvalidDateRange) {
				return badRequest(c, "start date must not be after end date")
			}
			return serverErrorWithDetails(c, "Failed to fetch sessions", err)
		}
		return success(c, fiber.Map{"sessions": sessions})
	}
}

// GetSession retrieves one session by id
func GetSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid session id")
		}

		session, err := a.Sessions.Get(c.Context(), id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch session", err)
		}
		if session == nil {
			return notFound(c, "Session not found")
		}
		return success(c, fiber.Map{"session": session})
	}
}

// CreateSession logs a new practice session
func CreateSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSessionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID, _ := parseID(req.UserID)
		activityID, _ := parseID(req.ActivityID)

		session, err := a.Sessions.Create(c.Context(),
			userID, activityID, req.DurationMinutes, req.Date, req.Rating, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return badRequest(c, "Unknown user")
			case errors.Is(err, services.ErrActivityNotFound):
				return badRequest(c, "Unknown activity")
			}
			return serverErrorWithDetails(c, "Failed to create session", err)
		}

		return created(c, fiber.Map{"session": session})
	}
}

// UpdateSession replaces a session's duration, date, rating and notes
func UpdateSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid session id")
		}

		var req models.UpdateSessionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		session, err := a.Sessions.Update(c.Context(), id, req.DurationMinutes, req.Date, req.Rating, req.Notes)
		if err != nil {
			if errors.Is(err, services.ErrPracticeNotFound) {
				return notFound(c, "Session not found")
			}
			return serverErrorWithDetails(c, "Failed to update session", err)
		}

		return success(c, fiber.Map{"session": session})
	}
}

// DeleteSession removes a session
func DeleteSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid session id")
		}

		if err := a.Sessions.Delete(c.Context(), id); err != nil {
			return serverErrorWithDetails(c, "Failed to delete session", err)
		}
		return success(c, fiber.Map{"message": "Session deleted"})
	}
}
