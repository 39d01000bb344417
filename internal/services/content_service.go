package services

import (
	"errors"

	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
)

// ErrMissingContentFields is returned when a content article lacks a required field.
var ErrMissingContentFields = errors.New("title and content are required")

// ContentService handles the admin-curated region and cultivation articles.
type ContentService struct {
	regionRepo      repositories.RegionInfoRepository
	cultivationRepo repositories.CultivationInfoRepository
}

// NewContentService creates a new ContentService.
func NewContentService(regionRepo repositories.RegionInfoRepository, cultivationRepo repositories.CultivationInfoRepository) *ContentService {
	return &ContentService{
		regionRepo:      regionRepo,
		cultivationRepo: cultivationRepo,
	}
}

// ListRegions retrieves all region articles.
func (s *ContentService) ListRegions() ([]models.RegionInfo, error) {
	return s.regionRepo.GetAll()
}

// CreateRegion creates a new region article.
func (s *ContentService) CreateRegion(title, content, imageURL string) (*models.RegionInfo, error) {
	if title == "" || content == "" {
		return nil, ErrMissingContentFields
	}
	region := &models.RegionInfo{
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.regionRepo.Create(region); err != nil {
		return nil, err
	}
	return region, nil
}

// ListCultivationInfo retrieves all cultivation articles.
func (s *ContentService) ListCultivationInfo() ([]models.CultivationInfo, error) {
	return s.cultivationRepo.GetAll()
}

// CreateCultivationInfo creates a new cultivation article.
func (s *ContentService) CreateCultivationInfo(title, content, imageURL string) (*models.CultivationInfo, error) {
	if title == "" || content == "" {
		return nil, ErrMissingContentFields
	}
	info := &models.CultivationInfo{
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.cultivationRepo.Create(info); err != nil {
		return nil, err
	}
	return info, nil
}
