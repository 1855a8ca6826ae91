package delivery

import (
	"rabbitry/domain"
	"rabbitry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type kitHandler struct {
	kuc domain.KitUseCase
}

func NewKitDelivery(app *fiber.App, uc domain.KitUseCase) {
	handler := &kitHandler{
		kuc: uc,
	}

	route := app.Group("/kit", middleware.AuthRequired())

	route.Post("/insert", handler.deliveryInsertKitRecord)
	route.Get("/get/:id", handler.deliveryGetKitRecordByID)
	route.Put("/modify/:id", handler.deliveryModifyKitRecord)
}

func (h *kitHandler) deliveryInsertKitRecord(c *fiber.Ctx) error {
	var req domain.KitRecord
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	v, err := h.kuc.CreateKitRecord(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *kitHandler) deliveryGetKitRecordByID(c *fiber.Ctx) error {
	v, err := h.kuc.GetKitRecordByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *kitHandler) deliveryModifyKitRecord(c *fiber.Ctx) error {
	var req domain.KitUpdatePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	v, err := h.kuc.UpdateKitRecord(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}
