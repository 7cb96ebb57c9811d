package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SmsTemplate is an admin-editable message body. [Code], [CustomerName]
// and [SalonName] are replaced before sending.
type SmsTemplate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Purpose  string    `gorm:"type:varchar(20);uniqueIndex;not null"` // otp, reminder
	Message  string    `gorm:"type:text;not null"`
	IsActive bool      `gorm:"default:true"`

	gorm.Model
}

func (t *SmsTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
