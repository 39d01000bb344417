package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"strawberryroute/internal/middleware"
	"strawberryroute/internal/models"
	"strawberryroute/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedUploadTypes = map[string]bool{
	"region":      true,
	"cultivation": true,
	"producers":   true,
}

// UploadHandler stores admin-uploaded images on local disk and returns their
// public URL.
type UploadHandler struct {
	authService *services.AuthService
	uploadDir   string
}

// NewUploadHandler creates a new UploadHandler writing under uploadDir.
func NewUploadHandler(authService *services.AuthService, uploadDir string) *UploadHandler {
	return &UploadHandler{
		authService: authService,
		uploadDir:   uploadDir,
	}
}

// RegisterRoutes registers the upload route with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	adminOnly := middleware.AuthRequired(h.authService, models.RoleAdmin)
	router.Post("/upload", adminOnly, h.HandleUpload)
}

// HandleUpload accepts a multipart file plus a target type and stores it under
// a unique name so uploads never clobber each other.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "File and type are required",
		})
	}

	uploadType := c.FormValue("type")
	if uploadType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "File and type are required",
		})
	}
	if !allowedUploadTypes[uploadType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid type. Must be region, cultivation or producers",
		})
	}

	filename := fmt.Sprintf("image-%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	dir := filepath.Join(h.uploadDir, uploadType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Error creating upload directory %s: %v", dir, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store the image",
		})
	}

	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store the image",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Upload successful",
		"imageUrl": fmt.Sprintf("/images/%s/%s", uploadType, filename),
	})
}
