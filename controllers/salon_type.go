// controllers/salon_type.go
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

type CreateSalonTypeInput struct {
	Name    string `json:"name" binding:"required"`
	Slug    string `json:"slug"`
	IconURL string `json:"iconUrl"`
}

type UpdateSalonTypeInput struct {
	Name    *string `json:"name"`
	Slug    *string `json:"slug"`
	IconURL *string `json:"iconUrl"`
}

// GetSalonTypes retrieves all salon types
func GetSalonTypes(c *gin.Context) {
	var types []models.SalonType
	if err := config.DB.Find(&types).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salon types")
		return
	}

	c.JSON(http.StatusOK, types)
}

// CreateSalonType creates a new salon type; the slug is derived from the
// name when not given explicitly.
func CreateSalonType(c *gin.Context) {
	var input CreateSalonTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}

	salonType := models.SalonType{
		Name:    input.Name,
		Slug:    slug,
		IconURL: input.IconURL,
	}

	if err := config.DB.Create(&salonType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon type")
		return
	}

	c.JSON(http.StatusCreated, salonType)
}

// UpdateSalonType updates an existing salon type
func UpdateSalonType(c *gin.Context) {
	typeID := c.Param("id")
	typeUUID, err := uuid.Parse(typeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon type ID format")
		return
	}

	var input UpdateSalonTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var salonType models.SalonType
	if err := config.DB.First(&salonType, "id = ?", typeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon type not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		salonType.Name = *input.Name
	}
	if input.Slug != nil {
		salonType.Slug = *input.Slug
	}
	if input.IconURL != nil {
		salonType.IconURL = *input.IconURL
	}

	if err := config.DB.Save(&salonType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon type")
		return
	}

	c.JSON(http.StatusOK, salonType)
}

// DeleteSalonType soft deletes a salon type
func DeleteSalonType(c *gin.Context) {
	typeID := c.Param("id")
	typeUUID, err := uuid.Parse(typeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon type ID format")
		return
	}

	var count int64
	if err := config.DB.Model(&models.Salon{}).
		Where("salon_type_id = ?", typeUUID).Count(&count).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Salon type is still in use")
		return
	}

	result := config.DB.Delete(&models.SalonType{}, "id = ?", typeUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete salon type")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Salon type not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Salon type deleted successfully"})
}
