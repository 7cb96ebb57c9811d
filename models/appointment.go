package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	StaffID   *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID *uuid.UUID `gorm:"type:uuid;index"`

	CustomerName  string `gorm:"not null"`
	CustomerPhone string `gorm:"index;not null"`

	ScheduledAt time.Time `gorm:"index;not null"`
	Status      string    `gorm:"type:varchar(20);default:'pending'"` // pending, confirmed, cancelled
	Notes       string

	Salon Salon `gorm:"foreignKey:SalonID"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
