package models

import (
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleProducer Role = "PRODUCER"
)

// IsValid reports whether r is one of the declared roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleProducer
}

// User is a login account. Producers additionally own a Producer profile.
type User struct {
	ID                    uint       `json:"id" gorm:"primaryKey"`
	Username              string     `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email                 string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password              string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role                  Role       `json:"role" gorm:"type:varchar(20);default:PRODUCER"`
	RecoveryCode          *string    `json:"-" gorm:"type:varchar(6)"`
	RecoveryCodeExpiresAt *time.Time `json:"-"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
