package repositories

import "strawberryroute/internal/models"

// VisitRepository defines the interface for visit request data access.
type VisitRepository interface {
	Create(visit *models.Visit) error
	GetByProducerID(producerID uint) ([]models.Visit, error)
}
