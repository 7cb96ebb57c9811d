package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"not null"`

	Services []GlobalService `gorm:"foreignKey:CategoryID"`

	gorm.Model
}

func (c *ServiceCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// GlobalService is a platform-wide service name (e.g. "Saç Kesimi") used
// for the navigation menu and for service suggestions.
type GlobalService struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"not null"`

	gorm.Model
}

func (s *GlobalService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// SalonService is a service offered by a single salon. Only the free-text
// name participates in search; price and duration feed the booking screen.
type SalonService struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name     string  `gorm:"not null"`
	Price    float64 `gorm:"type:decimal(10,2);default:0.0"`
	Duration int     // in minutes

	gorm.Model
}

func (s *SalonService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
