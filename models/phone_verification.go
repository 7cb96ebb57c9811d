package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhoneVerification holds a pending OTP challenge for one appointment.
type PhoneVerification struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`

	Phone     string    `gorm:"index;not null"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Attempts  int       `gorm:"default:0"`
	Verified  bool      `gorm:"default:false"`

	gorm.Model
}

func (v *PhoneVerification) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
