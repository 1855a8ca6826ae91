package delivery

import (
	"rabbitry/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps the domain error kinds onto HTTP statuses. Note
// that breeding/kit lookups report missing records as validation
// failures, so those surface as 400 rather than 404.
func statusFromError(err error) int {
	switch {
	case domain.IsValidation(err):
		return fiber.StatusBadRequest
	case domain.IsUnauthorized(err):
		return fiber.StatusForbidden
	case domain.IsNotFound(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

func farmIDFromLocals(c *fiber.Ctx) (string, error) {
	farmID, _ := c.Locals("farm_id").(string)
	if farmID == "" {
		return "", domain.NewUnauthorizedError("no farm assigned to this account")
	}
	return farmID, nil
}
