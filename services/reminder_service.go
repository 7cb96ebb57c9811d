// services/reminder_service.go
package services

import (
	"log"
	"time"

	"salonbul-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService sends day-before SMS reminders for confirmed
// appointments and runs the hourly verification purge.
type ReminderService struct {
	db           *gorm.DB
	sms          *SmsService
	verification *VerificationService
}

func NewReminderService(db *gorm.DB, sms *SmsService, verification *VerificationService) *ReminderService {
	return &ReminderService{db: db, sms: sms, verification: verification}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Daily at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)
	// Hourly cleanup of stale OTP challenges
	c.AddFunc("@hourly", s.verification.PurgeExpired)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders notifies customers whose confirmed appointment is
// tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	dayStart := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var appointments []models.Appointment
	err := s.db.Preload("Salon").
		Where("status = ? AND scheduled_at >= ? AND scheduled_at < ?",
			models.AppointmentConfirmed, dayStart, dayEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder: failed to fetch appointments: %v", err)
		return
	}

	template := s.sms.Template(SmsPurposeReminder)
	for _, appt := range appointments {
		message := Render(template, map[string]string{
			"CustomerName": appt.CustomerName,
			"SalonName":    appt.Salon.Name,
		})
		if err := s.sms.Send(appt.CustomerPhone, message, SmsPurposeReminder, &appt.SalonID); err != nil {
			log.Printf("reminder: failed for appointment %s: %v", appt.ID, err)
		}
	}

	log.Println("Daily reminder processing completed")
}
