package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmoran14/buddies-cup/internal/config"
	"github.com/dmoran14/buddies-cup/internal/middleware"
)

// LoginRequest is the JSON body for POST /api/v1/auth/login. There are no
// usernames: the whole trip shares one password, and the commissioner has a
// second one that unlocks admin routes.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the signed session token and the role it grants.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login returns a handler for POST /api/v1/auth/login.
// Checks the presented password against the two configured secrets and issues
// a session JWT for the matching role. Wrong password → 401.
func Login(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		var role string
		switch req.Password {
		case "":
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "password is required",
			})
		case cfg.AdminPassword:
			role = middleware.RoleAdmin
		case cfg.TripPassword:
			role = middleware.RoleViewer
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "wrong password",
			})
		}

		token, err := middleware.IssueToken(cfg, role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to issue token",
			})
		}
		return c.JSON(LoginResponse{Token: token, Role: role})
	}
}
