package handlers

import (
	"errors"
	"log"

	"strawberryroute/internal/middleware"
	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
	"strawberryroute/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// VisitHandler handles HTTP requests for visit requests.
type VisitHandler struct {
	visitService *services.VisitService
	authService  *services.AuthService
	validate     *validator.Validate
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(visitService *services.VisitService, authService *services.AuthService) *VisitHandler {
	return &VisitHandler{
		visitService: visitService,
		authService:  authService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the visit routes with the Fiber app. Submission is
// the public booking form; the listing is gated to the owning producer.
func (h *VisitHandler) RegisterRoutes(router fiber.Router) {
	producerOnly := middleware.AuthRequired(h.authService, models.RoleProducer)

	router.Post("/producers/visits", h.HandleScheduleVisit)
	router.Get("/producers/visits", producerOnly, h.HandleListVisits)
}

// ScheduleVisitRequest represents the public booking form submission.
type ScheduleVisitRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Date       string `json:"date" validate:"required"`
	ProducerID uint   `json:"producerId" validate:"required"`
}

// HandleScheduleVisit creates a new PENDING visit request.
func (h *VisitHandler) HandleScheduleVisit(c *fiber.Ctx) error {
	var req ScheduleVisitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing visit request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All required fields must be filled in",
			"errors":  validationMessages(err),
		})
	}

	visit, err := h.visitService.ScheduleVisit(req.ProducerID, req.Name, req.Email, req.Phone, req.Date)
	if err != nil {
		log.Printf("Error scheduling visit for producer %d: %v", req.ProducerID, err)
		switch {
		case errors.Is(err, services.ErrMissingVisitFields), errors.Is(err, services.ErrInvalidVisitDate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "All required fields must be filled in",
			})
		case errors.Is(err, repositories.ErrProducerNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Producer not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not schedule visit",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Visit scheduled successfully",
		"visit":   visit,
	})
}

// HandleListVisits returns the authenticated producer's visit requests,
// ordered by requested date ascending.
func (h *VisitHandler) HandleListVisits(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)

	visits, err := h.visitService.ListVisitsForProducer(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProducerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Producer not found",
			})
		}
		log.Printf("Error listing visits for user %d: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve visits",
			"error":   err.Error(),
		})
	}
	return c.JSON(visits)
}
