// controllers/staff.go
package controllers

import (
	"net/http"

	"salonbul-backend/config"
	"salonbul-backend/models"
	"salonbul-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateStaffInput struct {
	Name     string `json:"name" binding:"required"`
	Title    string `json:"title"`
	PhotoURL string `json:"photoUrl"`
}

// GetSalonStaff lists a salon's active staff
func GetSalonStaff(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var staff []models.Staff
	if err := config.DB.Where("salon_id = ? AND is_active = true", salonUUID).
		Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// AddSalonStaff adds a staff member to a salon
func AddSalonStaff(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff := models.Staff{
		SalonID:  salonUUID,
		Name:     input.Name,
		Title:    input.Title,
		PhotoURL: input.PhotoURL,
		IsActive: true,
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add staff")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// RemoveSalonStaff soft deletes a staff member
func RemoveSalonStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	result := config.DB.Delete(&models.Staff{}, "id = ?", staffUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove staff")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff removed successfully"})
}
