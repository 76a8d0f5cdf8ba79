package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/gokul-1998/flashdeck-service/internal/auth/handler"
	"github.com/gokul-1998/flashdeck-service/internal/dashboard/service"
	apperrors "github.com/gokul-1998/flashdeck-service/internal/errors"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	user := authhandler.CurrentUser(c)

	out, err := h.dashboardService.Overview(c.Context(), user)
	if err != nil {
		return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
