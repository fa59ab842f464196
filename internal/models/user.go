package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleClient  Role = "client"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// User is created only by a verified signup.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null;size:255" json:"-"`
	Role      Role           `gorm:"size:20;not null;default:'client'" json:"role"`
	FirstName string         `gorm:"size:100" json:"firstName,omitempty"`
	LastName  string         `gorm:"size:100" json:"lastName,omitempty"`
	Phone     string         `gorm:"size:15" json:"phone,omitempty"`
	City      string         `gorm:"size:100;index" json:"city,omitempty"`
	IsActive  bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
