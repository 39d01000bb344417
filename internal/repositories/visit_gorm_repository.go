package repositories

import (
	"fmt"

	"strawberryroute/internal/models"

	"gorm.io/gorm"
)

// GORMVisitRepository is a GORM implementation of VisitRepository.
type GORMVisitRepository struct {
	db *gorm.DB
}

// NewGORMVisitRepository creates a new instance of GORMVisitRepository.
func NewGORMVisitRepository(db *gorm.DB) *GORMVisitRepository {
	return &GORMVisitRepository{
		db: db,
	}
}

// Create creates a new visit request in the database.
func (r *GORMVisitRepository) Create(visit *models.Visit) error {
	if err := r.db.Create(visit).Error; err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

// GetByProducerID retrieves a producer's visit requests ordered by the
// requested date, earliest first.
func (r *GORMVisitRepository) GetByProducerID(producerID uint) ([]models.Visit, error) {
	var visits []models.Visit
	if err := r.db.Where("producer_id = ?", producerID).Order("date asc").Find(&visits).Error; err != nil {
		return nil, fmt.Errorf("failed to get visits for producer %d: %w", producerID, err)
	}
	return visits, nil
}
