// Package middleware contains HTTP middleware for the Buddies Cup API.
// This file gates admin-only routes — creating players/courses/matches,
// locking and unlocking score entry, settling bets.
package middleware

import "github.com/gofiber/fiber/v2"

// RequireAdmin returns a middleware handler that allows only sessions opened
// with the admin password. Must be used AFTER Auth, which populates the "role"
// value in the request context.
//
//	api.Post("/matches", middleware.RequireAdmin(), handlers.CreateMatch(db))
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != RoleAdmin {
			// Authenticated but not authorized (or Auth wasn't applied) — 403
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin access required",
			})
		}
		return c.Next()
	}
}
