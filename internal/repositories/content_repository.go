package repositories

import "strawberryroute/internal/models"

// RegionInfoRepository defines the interface for region article data access.
type RegionInfoRepository interface {
	Create(region *models.RegionInfo) error
	GetAll() ([]models.RegionInfo, error)
}

// CultivationInfoRepository defines the interface for cultivation article data access.
type CultivationInfoRepository interface {
	Create(info *models.CultivationInfo) error
	GetAll() ([]models.CultivationInfo, error)
}
