// controllers/geo.go
package controllers

import (
	"net/http"

	"salonbul-backend/config"
	"salonbul-backend/models"
	"salonbul-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCities retrieves all cities
func GetCities(c *gin.Context) {
	var cities []models.City
	if err := config.DB.Find(&cities).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cities")
		return
	}

	c.JSON(http.StatusOK, cities)
}

// GetCityDistricts retrieves the districts of one city by city id
func GetCityDistricts(c *gin.Context) {
	cityUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid city ID format")
		return
	}

	var districts []models.District
	if err := config.DB.Where("city_id = ?", cityUUID).Find(&districts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve districts")
		return
	}

	c.JSON(http.StatusOK, districts)
}
