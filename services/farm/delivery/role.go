package delivery

import (
	"rabbitry/domain"
	"rabbitry/middleware"

	"github.com/gofiber/fiber/v2"
)

type roleHandler struct {
	ruc domain.RoleUseCase
}

func NewRoleDelivery(app *fiber.App, uc domain.RoleUseCase) {
	handler := &roleHandler{
		ruc: uc,
	}

	route := app.Group("/role", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleOwner, domain.RoleManager))

	route.Get("/get_all", handler.deliveryGetAllRoles)
	route.Get("/get/:name", handler.deliveryGetRoleByName)
}

func (h *roleHandler) deliveryGetAllRoles(c *fiber.Ctx) error {
	v, err := h.ruc.GetAllRoles(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *roleHandler) deliveryGetRoleByName(c *fiber.Ctx) error {
	v, err := h.ruc.GetRoleByName(c.Context(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}
