package repositories

import (
	"fmt"

	"strawberryroute/internal/models"

	"gorm.io/gorm"
)

// GORMRegionInfoRepository is a GORM implementation of RegionInfoRepository.
type GORMRegionInfoRepository struct {
	db *gorm.DB
}

// NewGORMRegionInfoRepository creates a new instance of GORMRegionInfoRepository.
func NewGORMRegionInfoRepository(db *gorm.DB) *GORMRegionInfoRepository {
	return &GORMRegionInfoRepository{db: db}
}

// Create creates a new region article.
func (r *GORMRegionInfoRepository) Create(region *models.RegionInfo) error {
	if err := r.db.Create(region).Error; err != nil {
		return fmt.Errorf("failed to create region info: %w", err)
	}
	return nil
}

// GetAll retrieves all region articles ordered by id.
func (r *GORMRegionInfoRepository) GetAll() ([]models.RegionInfo, error) {
	var regions []models.RegionInfo
	if err := r.db.Order("id asc").Find(&regions).Error; err != nil {
		return nil, fmt.Errorf("failed to get region info: %w", err)
	}
	return regions, nil
}

// GORMCultivationInfoRepository is a GORM implementation of CultivationInfoRepository.
type GORMCultivationInfoRepository struct {
	db *gorm.DB
}

// NewGORMCultivationInfoRepository creates a new instance of GORMCultivationInfoRepository.
func NewGORMCultivationInfoRepository(db *gorm.DB) *GORMCultivationInfoRepository {
	return &GORMCultivationInfoRepository{db: db}
}

// Create creates a new cultivation article.
func (r *GORMCultivationInfoRepository) Create(info *models.CultivationInfo) error {
	if err := r.db.Create(info).Error; err != nil {
		return fmt.Errorf("failed to create cultivation info: %w", err)
	}
	return nil
}

// GetAll retrieves all cultivation articles ordered by id.
func (r *GORMCultivationInfoRepository) GetAll() ([]models.CultivationInfo, error) {
	var infos []models.CultivationInfo
	if err := r.db.Order("id asc").Find(&infos).Error; err != nil {
		return nil, fmt.Errorf("failed to get cultivation info: %w", err)
	}
	return infos, nil
}
