package handlers

import "github.com/gofiber/fiber/v2"

// actingUser returns the Gateway user identity attached by the user-context
// middleware; empty on routes that don't carry it.
func actingUser(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
