// services/sms_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"salonbul-backend/models"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const (
	SmsPurposeOTP      = "otp"
	SmsPurposeReminder = "reminder"
)

var defaultTemplates = map[string]string{
	SmsPurposeOTP:      "Salonbul doğrulama kodunuz: [Code]. Kod 3 dakika geçerlidir.",
	SmsPurposeReminder: "Merhaba [CustomerName], yarınki [SalonName] randevunuzu hatırlatırız.",
}

type SmsService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewSmsService(db *gorm.DB) *SmsService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &SmsService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// Template returns the active message body for a purpose, falling back
// to the built-in default when no row is active.
func (s *SmsService) Template(purpose string) string {
	var tmpl models.SmsTemplate
	if err := s.db.Where("purpose = ? AND is_active = true", purpose).
		First(&tmpl).Error; err == nil {
		return tmpl.Message
	}
	return defaultTemplates[purpose]
}

// Render substitutes the known placeholders into a template body.
func Render(template string, vars map[string]string) string {
	out := template
	for key, value := range vars {
		out = strings.ReplaceAll(out, "["+key+"]", value)
	}
	return out
}

// Send delivers one SMS and records the attempt in the log, success or
// failure. The returned error reflects the provider call.
func (s *SmsService) Send(phone, message, purpose string, salonID *uuid.UUID) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""
	sid := ""

	if err != nil {
		log.Printf("sms: failed to send to %s: %v", phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		sid = *resp.Sid
		log.Printf("sms: sent to %s, SID: %s", phone, sid)
	} else {
		log.Printf("sms: sent to %s, no SID returned", phone)
	}

	smsLog := models.SmsLog{
		SalonID:      salonID,
		Phone:        phone,
		Message:      message,
		Purpose:      purpose,
		Status:       status,
		ErrorMessage: errorMsg,
		ProviderSID:  sid,
		SentAt:       time.Now(),
	}
	if logErr := s.db.Create(&smsLog).Error; logErr != nil {
		log.Printf("sms: failed to log message to %s: %v", phone, logErr)
	}

	return err
}

// EnsureDefaultTemplates seeds the built-in template rows once.
func EnsureDefaultTemplates(db *gorm.DB) error {
	for purpose, message := range defaultTemplates {
		var count int64
		if err := db.Model(&models.SmsTemplate{}).
			Where("purpose = ?", purpose).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		tmpl := models.SmsTemplate{Purpose: purpose, Message: message, IsActive: true}
		if err := db.Create(&tmpl).Error; err != nil {
			return err
		}
	}
	return nil
}
