package middleware

import (
	"context"
	"strings"

	"helix/config"
	"helix/models"
	"helix/session"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/api/idtoken"
)

// UserResolver maps an external Google identity to a stored user.
type UserResolver interface {
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
}

// AuthRequired accepts either a session cookie or a Bearer Google ID token.
func AuthRequired(sessions *session.Store, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			sess, err := sessions.Get(sessionID)
			if err == nil && sess != nil {
				c.Locals("userID", sess.UserID.String())
				c.Locals("userEmail", sess.Email)
				c.Locals("session", sess)
				return c.Next()
			}
			c.ClearCookie("session_id")
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		payload, err := idtoken.Validate(c.Context(), parts[1], config.AppConfig.GoogleClientID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// The token subject is the Google id; the rest of the API works in
		// our own user ids, so resolve it here.
		user, err := users.GetByGoogleID(c.Context(), payload.Subject)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unknown user",
			})
		}

		c.Locals("userID", user.ID.String())
		c.Locals("userEmail", user.Email)

		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}

func GetUserEmail(c *fiber.Ctx) string {
	email, ok := c.Locals("userEmail").(string)
	if !ok {
		return ""
	}
	return email
}
