package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"chakula/internal/config"
	"chakula/internal/models"
)

// CreateDriver registers a driver profile for an existing user.
func CreateDriver(c *gin.Context) {
	var input struct {
		UserID       uint   `json:"user_id" binding:"required"`
		CarMake      string `json:"car_make" binding:"required"`
		CarModel     string `json:"car_model" binding:"required"`
		CarYear      string `json:"car_year" binding:"required"`
		LicensePlate string `json:"license_plate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	driver := models.Driver{
		UserID:       user.ID,
		CarMake:      input.CarMake,
		CarModel:     input.CarModel,
		CarYear:      input.CarYear,
		LicensePlate: input.LicensePlate,
		Active:       true,
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create driver: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// GetDriver retrieves a driver with the backing user record.
func GetDriver(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var driver models.Driver
	if err := config.DB.Preload("User").First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// ListDrivers lists all drivers.
func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Preload("User").Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch drivers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

// UpdateDriver modifies a driver profile.
func UpdateDriver(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	var input struct {
		CarMake      *string `json:"car_make"`
		CarModel     *string `json:"car_model"`
		CarYear      *string `json:"car_year"`
		LicensePlate *string `json:"license_plate"`
		Active       *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CarMake != nil {
		driver.CarMake = *input.CarMake
	}
	if input.CarModel != nil {
		driver.CarModel = *input.CarModel
	}
	if input.CarYear != nil {
		driver.CarYear = *input.CarYear
	}
	if input.LicensePlate != nil {
		driver.LicensePlate = *input.LicensePlate
	}
	if input.Active != nil {
		driver.Active = *input.Active
	}

	if err := config.DB.Save(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update driver: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// DeleteDriver removes a driver profile by ID.
func DeleteDriver(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.Driver{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
