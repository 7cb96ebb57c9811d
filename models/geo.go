package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type City struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"uniqueIndex;not null"`

	Districts []District `gorm:"foreignKey:CityID"`

	gorm.Model
}

func (c *City) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

type District struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	CityID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name   string    `gorm:"not null"`

	gorm.Model
}

func (d *District) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
