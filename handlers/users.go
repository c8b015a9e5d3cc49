package handlers

import (
	"errors"

	"helix/app"
	"helix/models"
	"helix/services"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists all users
func GetUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := a.Users.List(c.Context())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch users", err)
		}
		return success(c, fiber.Map{"users": users})
	}
}

// GetUser retrieves one user by id
func GetUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid user id")
		}

		user, err := a.Users.Get(c.Context(), id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch user", err)
		}
		if user == nil {
			return notFound(c, "User not found")
		}
		return success(c, fiber.Map{"user": user})
	}
}

// GetUserByGoogleID retrieves one user by external identity
func GetUserByGoogleID(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		googleID := c.Params("googleId")
		if googleID == "" {
			return badRequest(c, "google id is required")
		}

		user, err := a.Users.GetByGoogleID(c.Context(), googleID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch user", err)
		}
		if user == nil {
			return notFound(c, "User not found")
		}
		return success(c, fiber.Map{"user": user})
	}
}

// CreateUser creates a user outside the OAuth flow
func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.Users.Create(c.Context(), req.GoogleID, req.Email, req.Name, req.Picture)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				return conflict(c, "A user with this email already exists")
			}
			return serverErrorWithDetails(c, "Failed to create user", err)
		}

		return created(c, fiber.Map{"user": user})
	}
}

// UpdateUser updates a user's profile
func UpdateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid user id")
		}

		var req models.UpdateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.Users.Update(c.Context(), id, req.Name, req.Picture)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return notFound(c, "User not found")
			}
			return serverErrorWithDetails(c, "Failed to update user", err)
		}

		return success(c, fiber.Map{"user": user})
	}
}

// DeleteUser removes a user
func DeleteUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return badRequest(c, "Invalid user id")
		}

		if err := a.Users.Delete(c.Context(), id); err != nil {
			return serverErrorWithDetails(c, "Failed to delete user", err)
		}
		return success(c, fiber.Map{"message": "User deleted"})
	}
}
