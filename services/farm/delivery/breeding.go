package delivery

import (
	"rabbitry/domain"
	"rabbitry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type breedingHandler struct {
	buc domain.BreedingUseCase
}

func NewBreedingDelivery(app *fiber.App, uc domain.BreedingUseCase) {
	handler := &breedingHandler{
		buc: uc,
	}

	route := app.Group("/breeding", middleware.AuthRequired())

	route.Post("/insert", middleware.RoleRequired(domain.RoleOwner, domain.RoleManager), handler.deliveryInsertBreedingRecord)
	route.Get("/get_all", handler.deliveryGetAllBreedingRecords)
	route.Get("/get/:id", handler.deliveryGetBreedingRecordByID)
	route.Put("/modify/:id", middleware.RoleRequired(domain.RoleOwner, domain.RoleManager), handler.deliveryModifyBreedingRecord)
	route.Delete("/rm/:id", middleware.RoleRequired(domain.RoleOwner, domain.RoleManager), handler.deliveryDeleteBreedingRecord)
	route.Get("/culling_alerts", handler.deliveryGetCullingAlerts)
}

func (h *breedingHandler) deliveryInsertBreedingRecord(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	var req domain.BreedingRecord
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

	v, err := h.buc.CreateBreedingRecord(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *breedingHandler) deliveryGetAllBreedingRecords(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	v, err := h.buc.GetAllBreedingRecords(c.Context(), farmID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *breedingHandler) deliveryGetBreedingRecordByID(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	v, err := h.buc.GetBreedingRecordByID(c.Context(), c.Params("id"), farmID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *breedingHandler) deliveryModifyBreedingRecord(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	var req domain.BreedingUpdatePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	v, err := h.buc.UpdateBreedingRecord(c.Context(), c.Params("id"), farmID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}

func (h *breedingHandler) deliveryDeleteBreedingRecord(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	id := c.Params("id")
	if err := h.buc.DeleteBreedingRecord(c.Context(), id, farmID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": id},
	})
}

func (h *breedingHandler) deliveryGetCullingAlerts(c *fiber.Ctx) error {
	farmID, err := farmIDFromLocals(c)
	if err != nil {
		return respondError(c, err)
	}

	v, err := h.buc.GetCullingAlerts(c.Context(), farmID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    v,
	})
}
