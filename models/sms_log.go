// models/sms_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SmsLog struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key"`
	SalonID *uuid.UUID `gorm:"type:uuid;index"`

	Phone        string `gorm:"index;not null"`
	Message      string `gorm:"type:text"`
	Purpose      string `gorm:"type:varchar(20)"` // otp, reminder
	Status       string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string `gorm:"type:text"`
	ProviderSID  string `gorm:"type:varchar(64)"`
	SentAt       time.Time

	gorm.Model
}

func (l *SmsLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
