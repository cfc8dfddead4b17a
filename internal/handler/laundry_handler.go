package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-laundry-console/internal/service"
)

type LaundryHandler struct {
	service service.LaundryService
}

func NewLaundryHandler(s service.LaundryService) *LaundryHandler {
	return &LaundryHandler{service: s}
}

func (h *LaundryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

func (h *LaundryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid laundry item ID"})
	}

	item, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Laundry item not found"})
	}
	return c.JSON(item)
}

// Track is the public tracking endpoint: customers look their order up by
// code, no authentication required.
func (h *LaundryHandler) Track(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Laundry code is required"})
	}

	result, err := h.service.Track(code)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Laundry item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(result)
}

func (h *LaundryHandler) CreateItem(c *fiber.Ctx) error {
	var req service.CreateLaundryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.Create(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Laundry item created", "data": item})
}

func (h *LaundryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid laundry item ID"})
	}

	var req service.UpdateLaundryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Laundry item updated", "data": item})
}

func (h *LaundryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid laundry item ID"})
	}

	var req service.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.UpdateStatus(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrPaymentLocked):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Status updated", "data": item})
}

func (h *LaundryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid laundry item ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete laundry item"})
	}
	return c.JSON(fiber.Map{"message": "Laundry item deleted"})
}
