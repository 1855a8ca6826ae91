package delivery

import (
	"rabbitry/domain"
	"rabbitry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type farmHandler struct {
	fuc domain.FarmUseCase
}

func NewFarmDelivery(app *fiber.App, uc domain.FarmUseCase) {
	handler := &farmHandler{
		fuc: uc,
	}

	route := app.Group("/farm", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleOwner))

	route.Post("/insert", handler.deliveryInsertFarm)
	route.Get("/get_all", handler.deliveryGetAllFarms)
	route.Get("/get/:id", handler.deliveryGetFarmByID)
	route.Put("/modify/:id", handler.deliveryModifyFarm)
	route.Delete("/rm/:id", handler.deliveryDeleteFarm)
}

func (h *farmHandler) deliveryInsertFarm(c *fiber.Ctx) error {
	var req domain.Farm
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}
	req.OwnerID, _ = c.Locals("user_id").(int)

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	v, err := h.fuc.CreateFarm(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *farmHandler) deliveryGetAllFarms(c *fiber.Ctx) error {
	ownerID, _ := c.Locals("user_id").(int)

	v, err := h.fuc.GetAllFarms(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *farmHandler) deliveryGetFarmByID(c *fiber.Ctx) error {
	v, err := h.fuc.GetFarmByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *farmHandler) deliveryModifyFarm(c *fiber.Ctx) error {
	var req domain.Farm
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	v, err := h.fuc.UpdateFarm(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *farmHandler) deliveryDeleteFarm(c *fiber.Ctx) error {
	ownerID, _ := c.Locals("user_id").(int)

	id := c.Params("id")
	if err := h.fuc.DeleteFarm(c.Context(), id, ownerID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"farm_id": id},
	})
}
