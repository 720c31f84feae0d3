// Package handlers contains the HTTP route handler functions for the Buddies
// Cup API. Each exported function follows the handler factory pattern: it takes
// its dependencies (usually *gorm.DB) and returns a fiber.Handler, so nothing
// is reached through globals.
package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// Lightweight liveness probe — no database queries, no authentication. Used by
// the load balancer and by anyone checking whether the server came up.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
