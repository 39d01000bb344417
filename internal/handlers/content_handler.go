package handlers

import (
	"errors"
	"log"

	"strawberryroute/internal/middleware"
	"strawberryroute/internal/models"
	"strawberryroute/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles HTTP requests for region and cultivation articles.
type ContentHandler struct {
	contentService *services.ContentService
	authService    *services.AuthService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService *services.ContentService, authService *services.AuthService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		authService:    authService,
	}
}

// RegisterRoutes registers the content routes with the Fiber app. Reading is
// public; writing is reserved for administrators.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	adminOnly := middleware.AuthRequired(h.authService, models.RoleAdmin)

	router.Get("/regions", h.HandleListRegions)
	router.Post("/regions", adminOnly, h.HandleCreateRegion)
	router.Get("/cultivation", h.HandleListCultivationInfo)
	router.Post("/cultivation", adminOnly, h.HandleCreateCultivationInfo)
}

// ContentRequest represents the request body for a content article.
type ContentRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// HandleListRegions returns all region articles.
func (h *ContentHandler) HandleListRegions(c *fiber.Ctx) error {
	regions, err := h.contentService.ListRegions()
	if err != nil {
		log.Printf("Error listing regions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve region info",
		})
	}
	return c.JSON(regions)
}

// HandleCreateRegion creates a new region article.
func (h *ContentHandler) HandleCreateRegion(c *fiber.Ctx) error {
	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	region, err := h.contentService.CreateRegion(req.Title, req.Content, req.ImageURL)
	if err != nil {
		if errors.Is(err, services.ErrMissingContentFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Title and content are required",
			})
		}
		log.Printf("Error creating region: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create region info",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Region info created successfully",
		"region":  region,
	})
}

// HandleListCultivationInfo returns all cultivation articles.
func (h *ContentHandler) HandleListCultivationInfo(c *fiber.Ctx) error {
	infos, err := h.contentService.ListCultivationInfo()
	if err != nil {
		log.Printf("Error listing cultivation info: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cultivation info",
		})
	}
	return c.JSON(infos)
}

// HandleCreateCultivationInfo creates a new cultivation article.
func (h *ContentHandler) HandleCreateCultivationInfo(c *fiber.Ctx) error {
	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	info, err := h.contentService.CreateCultivationInfo(req.Title, req.Content, req.ImageURL)
	if err != nil {
		if errors.Is(err, services.ErrMissingContentFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Title and content are required",
			})
		}
		log.Printf("Error creating cultivation info: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create cultivation info",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "Cultivation info created successfully",
		"cultivationInfo": info,
	})
}
