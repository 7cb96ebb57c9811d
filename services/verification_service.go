// services/verification_service.go
package services

import (
	"errors"
	"log"
	"time"

	"salonbul-backend/models"
	"salonbul-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	otpLength      = 6
	otpTTL         = 3 * time.Minute
	otpMaxAttempts = 5
)

var (
	ErrNoPendingCode    = errors.New("no pending verification code")
	ErrCodeExpired      = errors.New("verification code expired")
	ErrCodeMismatch     = errors.New("verification code does not match")
	ErrTooManyAttempts  = errors.New("too many verification attempts")
	ErrAlreadyConfirmed = errors.New("appointment already confirmed")
)

// VerificationService owns the phone-verification step of booking.
type VerificationService struct {
	db  *gorm.DB
	sms *SmsService
}

func NewVerificationService(db *gorm.DB, sms *SmsService) *VerificationService {
	return &VerificationService{db: db, sms: sms}
}

// Start generates a fresh code for the appointment, stores it with its
// expiry and sends it to the customer's phone. Any previous pending code
// for the appointment is superseded.
func (v *VerificationService) Start(appt *models.Appointment) error {
	code, err := utils.GenerateOTP(otpLength)
	if err != nil {
		return err
	}

	v.db.Where("appointment_id = ? AND verified = false", appt.ID).
		Delete(&models.PhoneVerification{})

	verification := models.PhoneVerification{
		AppointmentID: appt.ID,
		Phone:         appt.CustomerPhone,
		Code:          code,
		ExpiresAt:     time.Now().Add(otpTTL),
	}
	if err := v.db.Create(&verification).Error; err != nil {
		return err
	}

	message := Render(v.sms.Template(SmsPurposeOTP), map[string]string{
		"Code":         code,
		"CustomerName": appt.CustomerName,
	})
	return v.sms.Send(appt.CustomerPhone, message, SmsPurposeOTP, &appt.SalonID)
}

// Verify checks the submitted code against the stored challenge and
// confirms the appointment on a match. Expired codes and exhausted
// attempts are distinct errors so the handler can answer precisely.
func (v *VerificationService) Verify(appointmentID uuid.UUID, code string) error {
	var appt models.Appointment
	if err := v.db.First(&appt, "id = ?", appointmentID).Error; err != nil {
		return err
	}
	if appt.Status == models.AppointmentConfirmed {
		return ErrAlreadyConfirmed
	}

	var verification models.PhoneVerification
	err := v.db.Where("appointment_id = ? AND verified = false", appointmentID).
		Order("created_at DESC").
		First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoPendingCode
		}
		return err
	}

	if verification.Attempts >= otpMaxAttempts {
		return ErrTooManyAttempts
	}
	if time.Now().After(verification.ExpiresAt) {
		return ErrCodeExpired
	}

	verification.Attempts++
	if verification.Code != code {
		v.db.Model(&verification).Update("attempts", verification.Attempts)
		return ErrCodeMismatch
	}

	return v.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&verification).
			Updates(map[string]interface{}{"verified": true, "attempts": verification.Attempts}).Error; err != nil {
			return err
		}
		return tx.Model(&appt).Update("status", models.AppointmentConfirmed).Error
	})
}

// PurgeExpired removes stale unverified challenges. Runs from the
// scheduler.
func (v *VerificationService) PurgeExpired() {
	result := v.db.Where("verified = false AND expires_at < ?", time.Now()).
		Delete(&models.PhoneVerification{})
	if result.Error != nil {
		log.Printf("verification: purge failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("verification: purged %d expired codes", result.RowsAffected)
	}
}
