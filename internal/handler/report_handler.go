package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/service"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetSummary builds the revenue report. Query params: start, end
// (YYYY-MM-DD), outletId, status. All optional.
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	var filter service.ReportFilter

	if start := c.Query("start"); start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start date, use YYYY-MM-DD"})
		}
		filter.Start = t
	}
	if end := c.Query("end"); end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date, use YYYY-MM-DD"})
		}
		filter.End = t
	}
	if outletParam := c.Query("outletId"); outletParam != "" {
		outletID, err := strconv.ParseInt(outletParam, 10, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid outlet ID"})
		}
		filter.OutletID = outletID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = model.ProcessStatus(status)
	}

	summary, err := h.service.Summary(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(summary)
}

func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stats)
}
