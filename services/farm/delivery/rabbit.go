package delivery

import (
	"rabbitry/domain"
	"rabbitry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type rabbitHandler struct {
	ruc domain.RabbitUseCase
}

func NewRabbitDelivery(app *fiber.App, uc domain.RabbitUseCase) {
	handler := &rabbitHandler{
		ruc: uc,
	}

	route := app.Group("/rabbit", middleware.AuthRequired())

	route.Post("/insert", handler.deliveryInsertRabbit)
	route.Get("/get_all", handler.deliveryGetAllRabbits)
	route.Get("/get/:id", handler.deliveryGetRabbitByID)
	route.Put("/modify/:id", handler.deliveryModifyRabbit)
	route.Delete("/rm/:id", middleware.RoleRequired(domain.RoleOwner, domain.RoleManager), handler.deliveryDeleteRabbit)
}

func (h *rabbitHandler) deliveryInsertRabbit(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	var req domain.Rabbit
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}
	req.FarmID = farmID

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	v, err := h.ruc.CreateRabbit(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *rabbitHandler) deliveryGetAllRabbits(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	v, err := h.ruc.GetAllRabbits(c.Context(), farmID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *rabbitHandler) deliveryGetRabbitByID(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	v, err := h.ruc.GetRabbitByID(c.Context(), c.Params("id"), farmID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *rabbitHandler) deliveryModifyRabbit(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	var req domain.Rabbit
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	v, err := h.ruc.UpdateRabbit(c.Context(), c.Params("id"), farmID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *rabbitHandler) deliveryDeleteRabbit(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	id := c.Params("id")
	if err := h.ruc.DeleteRabbit(c.Context(), id, farmID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"rabbit_id": id},
	})
}
