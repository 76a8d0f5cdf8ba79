package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *DashboardHandler, requireAuth fiber.Handler) {
	dashboard := app.Group("/dashboard", requireAuth)
	dashboard.Get("/", h.Overview)
}
