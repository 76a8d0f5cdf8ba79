package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *MediaHandler, requireAuth fiber.Handler) {
	media := app.Group("/media", requireAuth)
	media.Post("/upload-image", h.UploadImage)
}
