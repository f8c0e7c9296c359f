package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chakula/internal/config"
	"chakula/internal/models"
)

// CreateCity registers a new city under a state.
func CreateCity(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		StateID uint   `json:"state_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var state models.State
	if err := config.DB.First(&state, input.StateID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}

	city := models.City{Name: input.Name, StateID: state.ID}
	if err := config.DB.Create(&city).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create city: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"city": city})
}

// GetCity retrieves a city with its state.
func GetCity(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var city models.City
	if err := config.DB.Preload("State").First(&city, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city})
}

// ListCities lists all cities, optionally per state.
func ListCities(c *gin.Context) {
	query := config.DB.Preload("State")
	if stateID := c.Query("state_id"); stateID != "" {
		query = query.Where("state_id = ?", stateID)
	}

	var cities []models.City
	if err := query.Find(&cities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cities})
}

// UpdateCity modifies a city.
func UpdateCity(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var city models.City
	if err := config.DB.First(&city, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	var input struct {
		Name    *string `json:"name"`
		StateID *uint   `json:"state_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		city.Name = *input.Name
	}
	if input.StateID != nil {
		city.StateID = *input.StateID
	}

	if err := config.DB.Save(&city).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update city: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city})
}

// DeleteCity removes a city by ID.
func DeleteCity(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.City{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete city"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "City deleted"})
}
