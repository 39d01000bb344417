package models

import "time"

// Producer is the business-facing profile of a PRODUCER user, shown on the
// public map. Exactly one profile exists per producer account.
type Producer struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"userId" gorm:"uniqueIndex"`
	Name               string    `json:"name" gorm:"type:varchar(255)" validate:"required"`
	Description        string    `json:"description"`
	Phone              string    `json:"phone" gorm:"type:varchar(30)"`
	Address            string    `json:"address"`
	City               string    `json:"city" gorm:"type:varchar(100)"`
	State              string    `json:"state" gorm:"type:varchar(100)"`
	ZipCode            string    `json:"zipCode" gorm:"type:varchar(20)"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	CultivationMethods []string  `json:"cultivationMethods" gorm:"serializer:json"`
	ImageURL           string    `json:"imageUrl"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
