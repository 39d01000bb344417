package models

import "time"

// VisitStatus is the lifecycle state of a visit request. Submission always
// creates PENDING; CONFIRMED and CANCELLED are declared for the scheduling
// workflow but no endpoint currently transitions into them.
type VisitStatus string

const (
	VisitPending   VisitStatus = "PENDING"
	VisitConfirmed VisitStatus = "CONFIRMED"
	VisitCancelled VisitStatus = "CANCELLED"
)

// IsValid reports whether s is one of the declared statuses.
func (s VisitStatus) IsValid() bool {
	return s == VisitPending || s == VisitConfirmed || s == VisitCancelled
}

// Visit is a prospective buyer's booking request against a producer,
// submitted from the public site without authentication.
type Visit struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name" gorm:"type:varchar(255)"`
	Email      string      `json:"email" gorm:"type:varchar(255)"`
	Phone      string      `json:"phone" gorm:"type:varchar(30)"`
	Date       time.Time   `json:"date"`
	Status     VisitStatus `json:"status" gorm:"type:varchar(20);default:PENDING"`
	ProducerID uint        `json:"producerId" gorm:"index"`
	CreatedAt  time.Time   `json:"createdAt"`
}
