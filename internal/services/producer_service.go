package services

import (
	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
)

// ProducerUpdate carries the optional profile fields of an update request.
// Nil fields are left untouched.
type ProducerUpdate struct {
	Name               *string   `json:"name"`
	Description        *string   `json:"description"`
	Phone              *string   `json:"phone"`
	Address            *string   `json:"address"`
	City               *string   `json:"city"`
	State              *string   `json:"state"`
	ZipCode            *string   `json:"zipCode"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	CultivationMethods *[]string `json:"cultivationMethods"`
	ImageURL           *string   `json:"imageUrl"`
}

// ProducerService handles business logic for producer profiles.
type ProducerService struct {
	repo repositories.ProducerRepository
}

// NewProducerService creates a new ProducerService.
func NewProducerService(repo repositories.ProducerRepository) *ProducerService {
	return &ProducerService{
		repo: repo,
	}
}

// GetAllProducers retrieves every producer profile for the public listing.
func (s *ProducerService) GetAllProducers() ([]models.Producer, error) {
	return s.repo.GetAll()
}

// GetProducerByUserID retrieves the profile owned by the given user account.
func (s *ProducerService) GetProducerByUserID(userID uint) (*models.Producer, error) {
	return s.repo.GetByUserID(userID)
}

// UpdateProducerByUserID applies a partial update to the profile owned by the
// given user. The target profile is derived from the authenticated user's id,
// so one producer can never address another producer's profile.
func (s *ProducerService) UpdateProducerByUserID(userID uint, update ProducerUpdate) (*models.Producer, error) {
	producer, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		producer.Name = *update.Name
	}
	if update.Description != nil {
		producer.Description = *update.Description
	}
	if update.Phone != nil {
		producer.Phone = *update.Phone
	}
	if update.Address != nil {
		producer.Address = *update.Address
	}
	if update.City != nil {
		producer.City = *update.City
	}
	if update.State != nil {
		producer.State = *update.State
	}
	if update.ZipCode != nil {
		producer.ZipCode = *update.ZipCode
	}
	if update.Latitude != nil {
		producer.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		producer.Longitude = *update.Longitude
	}
	if update.CultivationMethods != nil {
		producer.CultivationMethods = *update.CultivationMethods
	}
	if update.ImageURL != nil {
		producer.ImageURL = *update.ImageURL
	}

	if err := s.repo.Update(producer); err != nil {
		return nil, err
	}
	return producer, nil
}
