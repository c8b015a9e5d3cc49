package handlers

import (
	"errors"

	"helix/app"
	"helix/models"
	"helix/services"

	"github.com/gofiber/fiber/v2"
)

// GetActivities lists all activities
func GetActivities(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activities, err := a.Activities.List(c.Context())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch activities", err)
		}
		return success(c, fiber.Map{"activities": activities})
	}
}

// GetPredefinedActivities lists the global activity catalog
func GetPredefinedActivities(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activities, err := a.Activities.Predefined(c.Context())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch predefined activities", err)
		}
		return success(c, fiber.Map{"activities": activities})
	}
}

// GetActivity retrieves one activity by id
func GetActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid activity id")
		}

		activity, err := a.Activities.Get(c.Context(), id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch activity", err)
		}
		if activity == nil {
			return notFound(c, "Activity not found")
		}
		return success(c, fiber.Map{"activity": activity})
	}
}

// CreateActivity creates a new activity
func CreateActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateActivityRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		activity, err := a.Activities.Create(c.Context(), req.Name, req.Color, req.Goal)
		if err != nil {
			if errors.Is(err, services.ErrActivityNameTaken) {
				return conflict(c, "An activity with this name already exists")
			}
			return serverErrorWithDetails(c, "Failed to create activity", err)
		}

		return created(c, fiber.Map{"activity": activity})
	}
}

// UpdateActivity replaces an activity's name, color and goal
func UpdateActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid activity id")
		}

		var req models.UpdateActivityRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		activity, err := a.Activities.Update(c.Context(), id, req.Name, req.Color, req.Goal)
		if err != nil {
			if errors.Is(err, services.ErrActivityNotFound) {
				return notFound(c, "Activity not found")
			}
			return serverErrorWithDetails(c, "Failed to update activity", err)
		}

		return success(c, fiber.Map{"activity": activity})
	}
}

// DeleteActivity removes an activity
func DeleteActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid activity id")
		}

		if err := a.Activities.Delete(c.Context(), id); err != nil {
			if errors.Is(err, services.ErrActivityNotFound) {
				return notFound(c, "Activity not found")
			}
			return serverErrorWithDetails(c, "Failed to delete activity", err)
		}
		return success(c, fiber.Map{"message": "Activity deleted"})
	}
}
