// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbul-backend/config"
	"salonbul-backend/models"
	"salonbul-backend/services"
	"salonbul-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	SalonID       string    `json:"salonId" binding:"required"`
	StaffID       *string   `json:"staffId"`
	ServiceID     *string   `json:"serviceId"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerPhone string    `json:"customerPhone" binding:"required"`
	ScheduledAt   time.Time `json:"scheduledAt" binding:"required"`
	Notes         string    `json:"notes"`
}

type VerifyBookingInput struct {
	Code string `json:"code" binding:"required,len=6"`
}

// BookingController handles appointment creation and the phone
// verification step that confirms it.
type BookingController struct {
	verification *services.VerificationService
}

func NewBookingController(verification *services.VerificationService) *BookingController {
	return &BookingController{verification: verification}
}

// CreateBooking creates a pending appointment and sends the OTP to the
// customer's phone. The appointment stays pending until verified.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	salonUUID, err := uuid.Parse(input.SalonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ScheduledAt.Before(time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment time must be in the future")
		return
	}

	appointment := models.Appointment{
		SalonID:       salonUUID,
		CustomerName:  input.CustomerName,
		CustomerPhone: utils.NormalizePhone(input.CustomerPhone),
		ScheduledAt:   input.ScheduledAt,
		Status:        models.AppointmentPending,
		Notes:         input.Notes,
	}

	if input.StaffID != nil {
		staffUUID, err := uuid.Parse(*input.StaffID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
			return
		}
		appointment.StaffID = &staffUUID
	}
	if input.ServiceID != nil {
		serviceUUID, err := uuid.Parse(*input.ServiceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		appointment.ServiceID = &serviceUUID
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	smsErr := bc.verification.Start(&appointment)

	c.JSON(http.StatusCreated, gin.H{
		"appointment": gin.H{
			"id":          appointment.ID,
			"status":      appointment.Status,
			"scheduledAt": appointment.ScheduledAt,
		},
		"smsSent": smsErr == nil,
	})
}

// VerifyBooking checks the submitted OTP and confirms the appointment.
func (bc *BookingController) VerifyBooking(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input VerifyBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	switch err := bc.verification.Verify(appointmentUUID, input.Code); {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Appointment confirmed"})
	case errors.Is(err, services.ErrCodeMismatch):
		utils.RespondWithError(c, http.StatusUnauthorized, "Verification code does not match")
	case errors.Is(err, services.ErrCodeExpired):
		utils.RespondWithError(c, http.StatusGone, "Verification code expired")
	case errors.Is(err, services.ErrTooManyAttempts):
		utils.RespondWithError(c, http.StatusTooManyRequests, "Too many verification attempts")
	case errors.Is(err, services.ErrNoPendingCode):
		utils.RespondWithError(c, http.StatusNotFound, "No pending verification for this appointment")
	case errors.Is(err, services.ErrAlreadyConfirmed):
		utils.RespondWithError(c, http.StatusConflict, "Appointment already confirmed")
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Verification failed")
	}
}

// ResendCode issues a fresh OTP for a still-pending appointment.
func (bc *BookingController) ResendCode(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", appointmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if appointment.Status != models.AppointmentPending {
		utils.RespondWithError(c, http.StatusConflict, "Appointment is not pending verification")
		return
	}

	if err := bc.verification.Start(&appointment); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to send verification code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}
