package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalonType struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Slug    string    `gorm:"uniqueIndex;not null"`
	IconURL string

	gorm.Model
}

func (t *SalonType) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
