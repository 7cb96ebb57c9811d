// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"

	"salonbul-backend/config"
	"salonbul-backend/models"
	"salonbul-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSalonInput defines the expected JSON structure for creating a salon
type CreateSalonInput struct {
	Name         string  `json:"name" binding:"required"`
	SalonTypeID  string  `json:"salonTypeId" binding:"required"`
	Address      string  `json:"address"`
	CityName     string  `json:"cityName"`
	DistrictName string  `json:"districtName"`
	Rating       float64 `json:"rating" binding:"min=0,max=5"`
	Sponsored    bool    `json:"sponsored"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ImageURL     string  `json:"imageUrl"`
}

// UpdateSalonInput defines the expected JSON structure for updating a salon
type UpdateSalonInput struct {
	Name         *string  `json:"name"`
	SalonTypeID  *string  `json:"salonTypeId"`
	Address      *string  `json:"address"`
	CityName     *string  `json:"cityName"`
	DistrictName *string  `json:"districtName"`
	Rating       *float64 `json:"rating"`
	Sponsored    *bool    `json:"sponsored"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ImageURL     *string  `json:"imageUrl"`
}

// GetSalons retrieves all salons
func GetSalons(c *gin.Context) {
	var salons []models.Salon
	if err := config.DB.Preload("SalonType").Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	c.JSON(http.StatusOK, salons)
}

// GetSalon retrieves one salon with its staff and services
func GetSalon(c *gin.Context) {
	salonID := c.Param("id")
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.Preload("SalonType").Preload("Staff").Preload("Services").
		First(&salon, "id = ?", salonUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, salon)
}

// CreateSalon creates a new salon
func CreateSalon(c *gin.Context) {
	var input CreateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	typeUUID, err := uuid.Parse(input.SalonTypeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon type ID format")
		return
	}

	var salonType models.SalonType
	if err := config.DB.First(&salonType, "id = ?", typeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Salon type not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	salon := models.Salon{
		SalonTypeID:  typeUUID,
		Name:         input.Name,
		Address:      input.Address,
		CityName:     input.CityName,
		DistrictName: input.DistrictName,
		Rating:       input.Rating,
		Sponsored:    input.Sponsored,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		ImageURL:     input.ImageURL,
	}

	if err := config.DB.Create(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		return
	}

	c.JSON(http.StatusCreated, salon)
}

// UpdateSalon updates an existing salon
func UpdateSalon(c *gin.Context) {
	salonID := c.Param("id")
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.SalonTypeID != nil {
		typeUUID, err := uuid.Parse(*input.SalonTypeID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon type ID format")
			return
		}
		salon.SalonTypeID = typeUUID
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.CityName != nil {
		salon.CityName = *input.CityName
	}
	if input.DistrictName != nil {
		salon.DistrictName = *input.DistrictName
	}
	if input.Rating != nil {
		salon.Rating = *input.Rating
	}
	if input.Sponsored != nil {
		salon.Sponsored = *input.Sponsored
	}
	if input.Latitude != nil {
		salon.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		salon.Longitude = *input.Longitude
	}
	if input.ImageURL != nil {
		salon.ImageURL = *input.ImageURL
	}

	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// DeleteSalon soft deletes a salon
func DeleteSalon(c *gin.Context) {
	salonID := c.Param("id")
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	result := config.DB.Delete(&models.Salon{}, "id = ?", salonUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete salon")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Salon deleted successfully"})
}
