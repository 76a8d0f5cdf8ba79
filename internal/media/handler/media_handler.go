package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type MediaHandler struct {
	uploadDir string
}

func NewMediaHandler(uploadDir string) *MediaHandler {
	return &MediaHandler{uploadDir: uploadDir}
}

// UploadImage stores an uploaded image under a unique name and returns
// its public URL together with a ready-to-paste markdown snippet.
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported file type. Allowed: png, jpg, jpeg, gif, webp",
		})
	}

	safeName := strings.NewReplacer("/", "_", "\\", "_").Replace(file.Filename)
	uniqueName := fmt.Sprintf("%s_%s", strings.ReplaceAll(uuid.NewString(), "-", ""), safeName)

	if err := c.SaveFile(file, filepath.Join(h.uploadDir, uniqueName)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save image: %v", err),
		})
	}

	publicURL := "/static/uploads/" + uniqueName
	alt := c.FormValue("alt_text")
	if alt == "" {
		alt = safeName
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":      publicURL,
		"filename": uniqueName,
		"markdown": fmt.Sprintf("![%s](%s)", alt, publicURL),
		"message":  "Image uploaded successfully",
	})
}
