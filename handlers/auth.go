package handlers

import (
	"log"

	"helix/app"
	"helix/config"
	"helix/models"
	"helix/session"

	"github.com/gofiber/fiber/v2"
)

// Login handles user authentication via Google OAuth
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		var (
			sess *session.Session
			err  error
		)

		if req.Code != "" {
			log.Printf("[AUTH] Using authorization code flow")
			sess, err = a.Auth.LoginWithCode(c.Context(), req.Code)
		} else if req.IDToken != "" {
			log.Printf("[AUTH] Using ID token flow")
			sess, err = a.Auth.LoginWithIDToken(c.Context(), req.IDToken)
		} else {
			return badRequest(c, "Either code or id_token is required")
		}

		if err != nil {
			log.Printf("[AUTH] Login failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication failed",
			})
		}

		c.Cookie(&fiber.Cookie{
			Name:     "session_id",
			Value:    sess.ID,
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   config.AppConfig.Env == "production",
			SameSite: "Lax",
			Path:     "/",
		})

		return c.JSON(fiber.Map{
			"success": true,
			"user": fiber.Map{
				"id":      sess.UserID,
				"email":   sess.Email,
				"name":    sess.Name,
				"picture": sess.Picture,
			},
		})
	}
}

// Logout handles user logout
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			a.Auth.Logout(sessionID)
		}

		c.ClearCookie("session_id")

		return c.JSON(fiber.Map{"success": true})
	}
}

// Me returns the current login session's user
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := a.Auth.GetSessionInfo(c.Cookies("session_id"))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not logged in",
			})
		}

		return c.JSON(fiber.Map{
			"user": fiber.Map{
				"id":      sess.UserID,
				"email":   sess.Email,
				"name":    sess.Name,
				"picture": sess.Picture,
			},
		})
	}
}
