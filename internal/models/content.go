package models

import "time"

// RegionInfo is an admin-curated article about a producing region.
type RegionInfo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(255)" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CultivationInfo is an admin-curated article about a cultivation method.
type CultivationInfo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(255)" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
