package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chakula/internal/config"
	"chakula/internal/models"
)

// CreateAddress registers a delivery address.
func CreateAddress(c *gin.Context) {
	var input struct {
		StreetAddress1       string `json:"street_address_1" binding:"required"`
		StreetAddress2       string `json:"street_address_2"`
		ZipCode              string `json:"zip_code" binding:"required"`
		DeliveryInstructions string `json:"delivery_instructions"`
		CityID               uint   `json:"city_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var city models.City
	if err := config.DB.First(&city, input.CityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	address := models.Address{
		StreetAddress1:       input.StreetAddress1,
		StreetAddress2:       input.StreetAddress2,
		ZipCode:              input.ZipCode,
		DeliveryInstructions: input.DeliveryInstructions,
		CityID:               city.ID,
	}
	if err := config.DB.Create(&address).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create address: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": address})
}

// GetAddress retrieves an address with its city and state.
func GetAddress(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var address models.Address
	if err := config.DB.Preload("City.State").First(&address, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address})
}

// ListAddresses lists all addresses.
func ListAddresses(c *gin.Context) {
	var addresses []models.Address
	if err := config.DB.Preload("City.State").Find(&addresses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch addresses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": addresses})
}

// UpdateAddress modifies an address.
func UpdateAddress(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var address models.Address
	if err := config.DB.First(&address, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}

	var input struct {
		StreetAddress1       *string `json:"street_address_1"`
		StreetAddress2       *string `json:"street_address_2"`
		ZipCode              *string `json:"zip_code"`
		DeliveryInstructions *string `json:"delivery_instructions"`
		CityID               *uint   `json:"city_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.StreetAddress1 != nil {
		address.StreetAddress1 = *input.StreetAddress1
	}
	if input.StreetAddress2 != nil {
		address.StreetAddress2 = *input.StreetAddress2
	}
	if input.ZipCode != nil {
		address.ZipCode = *input.ZipCode
	}
	if input.DeliveryInstructions != nil {
		address.DeliveryInstructions = *input.DeliveryInstructions
	}
	if input.CityID != nil {
		address.CityID = *input.CityID
	}

	if err := config.DB.Save(&address).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update address: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address})
}

// DeleteAddress removes an address by ID.
func DeleteAddress(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.Address{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
