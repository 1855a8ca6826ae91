package delivery

import (
	"strconv"

	"rabbitry/domain"
	"rabbitry/middleware"

	"github.com/gofiber/fiber/v2"
)

type userHandler struct {
	uuc domain.UserUseCase
}

func NewUserDelivery(app *fiber.App, uc domain.UserUseCase) {
	handler := &userHandler{
		uuc: uc,
	}

	route := app.Group("/user", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleOwner, domain.RoleManager))

	route.Get("/get_all", handler.deliveryGetAllStaff)
	route.Get("/details/:username", handler.deliveryGetStaffDetail)
	route.Delete("/rm/:id", handler.deliveryDeleteStaff)
}

func (h *userHandler) deliveryGetAllStaff(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	v, err := h.uuc.GetAllStaff(c.Context(), farmID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *userHandler) deliveryGetStaffDetail(c *fiber.Ctx) error {
	v, err := h.uuc.FindUserByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *userHandler) deliveryDeleteStaff(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid user id",
		})
	}

	if err := h.uuc.DeleteStaff(c.Context(), id, farmID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"user_id": id},
	})
}
