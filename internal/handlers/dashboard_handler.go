package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// RegisterRoutes registers the dashboard routes; all of them are gated.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	router.Group("/dashboard", gate).Get("/stats", h.HandleGetStats)
}

// HandleGetStats returns resource counts and recent activity.
func (h *DashboardHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
