package models

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryWedding    Category = "wedding"
	CategoryMaternity  Category = "maternity"
	CategoryPortrait   Category = "portrait"
	CategoryEvent      Category = "event"
	CategoryCommercial Category = "commercial"
	CategoryFashion    Category = "fashion"
)

var Categories = []Category{
	CategoryWedding, CategoryMaternity, CategoryPortrait,
	CategoryEvent, CategoryCommercial, CategoryFashion,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Inquiry struct {
	ID                uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"clientId"`
	Category          Category      `gorm:"size:20;not null" json:"category"`
	EventDate         *time.Time    `json:"eventDate,omitempty"`
	Budget            *float64      `gorm:"type:numeric(10,2)" json:"budget,omitempty"`
	City              string        `gorm:"size:100;not null" json:"city"`
	Description       string        `gorm:"type:text" json:"description,omitempty"`
	ReferenceImageURL string        `gorm:"size:500" json:"referenceImageUrl,omitempty"`
	Status            InquiryStatus `gorm:"size:20;not null;default:'new';index" json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	Client            User          `gorm:"foreignKey:ClientID" json:"-"`
}
