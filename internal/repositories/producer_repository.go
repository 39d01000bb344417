package repositories

import "strawberryroute/internal/models"

// ProducerRepository defines the interface for producer profile data access.
type ProducerRepository interface {
	Create(producer *models.Producer) error
	GetAll() ([]models.Producer, error)
	GetByID(id uint) (*models.Producer, error)
	GetByUserID(userID uint) (*models.Producer, error)
	Update(producer *models.Producer) error
}
