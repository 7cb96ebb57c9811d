package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Salon struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonTypeID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string `gorm:"not null"`
	Address      string
	CityName     string `gorm:"index"`
	DistrictName string `gorm:"index"`

	Rating    float64 `gorm:"type:decimal(3,1);default:0.0"`
	Sponsored bool    `gorm:"default:false"`
	Latitude  float64 `gorm:"default:0"`
	Longitude float64 `gorm:"default:0"`
	ImageURL  string

	SalonType SalonType      `gorm:"foreignKey:SalonTypeID"`
	Staff     []Staff        `gorm:"foreignKey:SalonID"`
	Services  []SalonService `gorm:"foreignKey:SalonID"`

	gorm.Model
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
