package repositories

import (
	"fmt"

	"strawberryroute/internal/models"

	"gorm.io/gorm"
)

// GORMProducerRepository is a GORM implementation of ProducerRepository.
type GORMProducerRepository struct {
	db *gorm.DB
}

// NewGORMProducerRepository creates a new instance of GORMProducerRepository.
func NewGORMProducerRepository(db *gorm.DB) *GORMProducerRepository {
	return &GORMProducerRepository{
		db: db,
	}
}

// Create creates a new producer profile in the database.
func (r *GORMProducerRepository) Create(producer *models.Producer) error {
	if err := r.db.Create(producer).Error; err != nil {
		return fmt.Errorf("failed to create producer: %w", err)
	}
	return nil
}

// GetAll retrieves all producer profiles ordered by id for the public listing.
func (r *GORMProducerRepository) GetAll() ([]models.Producer, error) {
	var producers []models.Producer
	if err := r.db.Order("id asc").Find(&producers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all producers: %w", err)
	}
	return producers, nil
}

// GetByID retrieves a producer profile by its ID.
func (r *GORMProducerRepository) GetByID(id uint) (*models.Producer, error) {
	var producer models.Producer
	if err := r.db.First(&producer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProducerNotFound
		}
		return nil, fmt.Errorf("failed to get producer by ID %d: %w", id, err)
	}
	return &producer, nil
}

// GetByUserID retrieves the profile owned by the given user account.
func (r *GORMProducerRepository) GetByUserID(userID uint) (*models.Producer, error) {
	var producer models.Producer
	if err := r.db.First(&producer, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProducerNotFound
		}
		return nil, fmt.Errorf("failed to get producer by user ID %d: %w", userID, err)
	}
	return &producer, nil
}

// Update persists changes to an existing producer profile.
func (r *GORMProducerRepository) Update(producer *models.Producer) error {
	res := r.db.Save(producer)
	if res.Error != nil {
		return fmt.Errorf("failed to update producer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProducerNotFound
	}
	return nil
}
