package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/service"
)

type OutletHandler struct {
	service service.OutletService
}

func NewOutletHandler(s service.OutletService) *OutletHandler {
	return &OutletHandler{service: s}
}

func (h *OutletHandler) GetOutlets(c *fiber.Ctx) error {
	outlets, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(outlets)
}

func (h *OutletHandler) GetOutlet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid outlet ID"})
	}

	outlet, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Outlet not found"})
	}
	return c.JSON(outlet)
}

func (h *OutletHandler) CreateOutlet(c *fiber.Ctx) error {
	var outlet model.Outlet
	if err := c.BodyParser(&outlet); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.Create(&outlet)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Outlet created", "data": created})
}

func (h *OutletHandler) UpdateOutlet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid outlet ID"})
	}

	var outlet model.Outlet
	if err := c.BodyParser(&outlet); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &outlet)
	if err != nil {
		if errors.Is(err, service.ErrOutletNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Outlet updated", "data": updated})
}

func (h *OutletHandler) DeleteOutlet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid outlet ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete outlet"})
	}
	return c.JSON(fiber.Map{"message": "Outlet deleted"})
}
