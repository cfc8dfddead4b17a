package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id route param as the store's integer id.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
