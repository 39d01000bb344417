package handlers

import (
	"errors"
	"log"

	"strawberryroute/internal/middleware"
	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
	"strawberryroute/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProducerHandler handles HTTP requests for producer profiles.
type ProducerHandler struct {
	producerService *services.ProducerService
	authService     *services.AuthService
}

// NewProducerHandler creates a new ProducerHandler.
func NewProducerHandler(producerService *services.ProducerService, authService *services.AuthService) *ProducerHandler {
	return &ProducerHandler{
		producerService: producerService,
		authService:     authService,
	}
}

// RegisterRoutes registers the producer routes with the Fiber app. The public
// listing stays open; profile access is gated to the PRODUCER role and always
// scoped by the authenticated user's own id.
func (h *ProducerHandler) RegisterRoutes(router fiber.Router) {
	producerOnly := middleware.AuthRequired(h.authService, models.RoleProducer)

	producerRoutes := router.Group("/producers")
	producerRoutes.Get("/", h.HandleGetProducers)
	producerRoutes.Get("/me", producerOnly, h.HandleGetOwnProfile)
	producerRoutes.Put("/me", producerOnly, h.HandleUpdateOwnProfile)
	// Alias kept for older clients that PUT the collection path.
	producerRoutes.Put("/", producerOnly, h.HandleUpdateOwnProfile)
}

// HandleGetProducers returns every producer profile for the public map.
func (h *ProducerHandler) HandleGetProducers(c *fiber.Ctx) error {
	producers, err := h.producerService.GetAllProducers()
	if err != nil {
		log.Printf("Error getting all producers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve producers",
			"error":   err.Error(),
		})
	}
	return c.JSON(producers)
}

// HandleGetOwnProfile returns the authenticated producer's own profile.
func (h *ProducerHandler) HandleGetOwnProfile(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)

	producer, err := h.producerService.GetProducerByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProducerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Producer not found",
			})
		}
		log.Printf("Error getting producer for user %d: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve producer",
			"error":   err.Error(),
		})
	}
	return c.JSON(producer)
}

// HandleUpdateOwnProfile applies a partial update to the authenticated
// producer's own profile. The update target comes from the verified claims,
// never from the request body.
func (h *ProducerHandler) HandleUpdateOwnProfile(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)

	var update services.ProducerUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing producer update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	producer, err := h.producerService.UpdateProducerByUserID(claims.UserID, update)
	if err != nil {
		log.Printf("Error updating producer for user %d: %v", claims.UserID, err)
		if errors.Is(err, repositories.ErrProducerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Producer not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update producer",
		})
	}
	return c.JSON(producer)
}
